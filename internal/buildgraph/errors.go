package buildgraph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoOwningTarget is returned by the pivot strategy when no build target
// in the subject's package depends on the subject file.
var ErrNoOwningTarget = errors.New("no build target depends on the subject file")

// QueryError reports a query the engine rejected. Stderr carries the
// engine's raw diagnostic output so the caller can relay it verbatim.
type QueryError struct {
	Query  string
	Stderr string
	Err    error
}

func (e *QueryError) Error() string {
	msg := fmt.Sprintf("build-graph query %q failed", e.Query)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if diag := strings.TrimSpace(e.Stderr); diag != "" {
		msg += ": " + diag
	}
	return msg
}

func (e *QueryError) Unwrap() error { return e.Err }

// DecodeError reports engine output that was not valid text.
type DecodeError struct {
	Query string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("build-graph query %q produced undecodable output", e.Query)
}
