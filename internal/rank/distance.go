package rank

import (
	"math"
	"path/filepath"
	"strings"
)

// MaxDistance is the sentinel for paths that cannot be resolved on disk.
// Unresolvable candidates sort after every resolvable one instead of
// aborting the whole sort.
const MaxDistance = math.MaxInt

// Distance returns the tree distance between two filesystem paths: the
// number of path segments on either side beyond their shared prefix. Zero
// for identical paths, symmetric, growing with divergence in the tree.
// Both paths are resolved to absolute symlink-free form first so the metric
// reflects real filesystem identity rather than lexical sameness.
func Distance(a, b string) int {
	ra, err := resolve(a)
	if err != nil {
		return MaxDistance
	}
	rb, err := resolve(b)
	if err != nil {
		return MaxDistance
	}
	return segmentDistance(splitSegments(ra), splitSegments(rb))
}

func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func segmentDistance(a, b []string) int {
	common := 0
	for common < len(a) && common < len(b) && a[common] == b[common] {
		common++
	}
	return (len(a) - common) + (len(b) - common)
}

func splitSegments(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
