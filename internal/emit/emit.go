package emit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// State tracks emission progress across calls. It is created once per run,
// threaded through every emission call, and guarantees that LinesPrinted
// never exceeds the budget and that a path is handled at most once no
// matter how many candidate lists reference it.
type State struct {
	LinesPrinted int
	Printed      map[string]bool
}

func NewState() *State {
	return &State{Printed: make(map[string]bool)}
}

// Exhausted reports whether the budget has no room left.
func (s *State) Exhausted(limit int) bool {
	return s.LinesPrinted >= limit
}

// Files prints each admitted file as a "==> path <==" header followed by
// its verbatim contents. Admission is all-or-nothing: a file prints only
// when its full line count fits the remaining budget, otherwise it is
// skipped entirely rather than truncated. Missing or unreadable files get a
// warning and are skipped without aborting the run. Iteration stops as soon
// as the budget is exhausted. Returns the lines printed by this call.
func Files(w io.Writer, logger *slog.Logger, paths []string, limit int, st *State) int {
	printed := 0
	for _, path := range paths {
		if st.Exhausted(limit) {
			break
		}
		if st.Printed[path] {
			continue
		}
		st.Printed[path] = true

		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warn("file no longer exists, skipping", "path", path)
			} else {
				logger.Warn("file could not be read, skipping", "path", path, "error", err)
			}
			continue
		}

		lines := CountLines(string(content))
		if limit-st.LinesPrinted < lines {
			continue
		}
		fmt.Fprintf(w, "==> %s <==\n", path)
		io.WriteString(w, string(content))
		st.LinesPrinted += lines
		printed += lines
	}
	return printed
}

// CountLines counts content lines, with a final unterminated line still
// counting as one. Empty content is zero lines.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
