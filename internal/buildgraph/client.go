package buildgraph

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// DefaultEngine is the build-graph engine binary used when none is configured.
const DefaultEngine = "bazel"

// CommandRunner executes the engine binary and returns its captured stdout
// and stderr. Injectable so tests can substitute canned query output.
type CommandRunner func(name string, args ...string) (stdout string, stderr string, err error)

// Client issues queries against the external build-graph engine. Each call
// spawns one engine process; a failed invocation surfaces immediately as an
// error and is never retried or degraded to an empty result.
type Client struct {
	bin    string
	runner CommandRunner
	logger *slog.Logger
}

func NewClient(bin string, logger *slog.Logger) *Client {
	return NewClientWithRunner(bin, logger, defaultRunner)
}

func NewClientWithRunner(bin string, logger *slog.Logger, runner CommandRunner) *Client {
	if strings.TrimSpace(bin) == "" {
		bin = DefaultEngine
	}
	return &Client{bin: bin, runner: runner, logger: logger}
}

// ResolvePackage returns the package that owns sourceFile.
func (c *Client) ResolvePackage(sourceFile string) (string, error) {
	out, err := c.query(sourceFile, "--output=package")
	if err != nil {
		return "", err
	}
	pkg := strings.TrimSpace(out)
	if pkg == "" {
		return "", &QueryError{Query: sourceFile, Err: fmt.Errorf("engine reported no owning package")}
	}
	return pkg, nil
}

// DependencySources returns the source files the build graph reaches from
// scope within depth. The kind wrapper excludes rule and metadata targets.
func (c *Client) DependencySources(scope string, depth int) ([]string, error) {
	expr := fmt.Sprintf("kind(%q, deps(%s, %d))", "source file", scope, depth)
	out, err := c.query(expr, "--output=location")
	if err != nil {
		return nil, err
	}
	return ParseLocationOutput(out), nil
}

// CombinedDependencySources is the single-query form: source files reachable
// from the targets that reverse-depend on sourceFile within pkg, both
// traversals bounded by depth.
func (c *Client) CombinedDependencySources(pkg, sourceFile string, depth int) ([]string, error) {
	scope := fmt.Sprintf("rdeps(%s:all, %s, %d)", pkg, sourceFile, depth)
	return c.DependencySources(scope, depth)
}

// ReverseDependents returns the labels of targets in pkg that transitively
// depend on sourceFile within depth.
func (c *Client) ReverseDependents(pkg, sourceFile string, depth int) ([]string, error) {
	expr := fmt.Sprintf("rdeps(%s:all, %s, %d)", pkg, sourceFile, depth)
	out, err := c.query(expr, "--output=label")
	if err != nil {
		return nil, err
	}
	return ParseLabelOutput(out), nil
}

func (c *Client) query(expr string, extra ...string) (string, error) {
	args := append([]string{"query", expr}, extra...)
	c.logger.Debug("running build-graph query", "bin", c.bin, "args", strings.Join(args, " "))
	stdout, stderr, err := c.runner(c.bin, args...)
	if err != nil {
		return "", &QueryError{Query: expr, Stderr: stderr, Err: err}
	}
	if !utf8.ValidString(stdout) {
		return "", &DecodeError{Query: expr}
	}
	return stdout, nil
}

// ParseLocationOutput extracts file paths from --output=location records.
// Each record is "path:line:col: ..."; everything before the first colon is
// the path. Lines without a path prefix are dropped silently.
func ParseLocationOutput(out string) []string {
	lines := strings.Split(out, "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		path, _, _ := strings.Cut(line, ":")
		if path == "" {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// ParseLabelOutput extracts target labels from --output=label records.
func ParseLabelOutput(out string) []string {
	lines := strings.Split(out, "\n")
	labels := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		labels = append(labels, line)
	}
	return labels
}

func defaultRunner(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
