package assemble

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/srcctx-dev/srcctx/internal/rank"
)

// Options controls how raw query results become a ranked candidate list.
type Options struct {
	// Subject is the file the user asked about; candidates are ordered by
	// proximity to it.
	Subject string
	// Extensions is the explicit allow-list. Entries are accepted with or
	// without a leading dot.
	Extensions []string
	// FilterByExtension enables implicit filtering by the subject's own
	// extension when no explicit allow-list is given.
	FilterByExtension bool
	// Distance overrides the proximity metric. Nil means rank.Distance.
	Distance func(a, b string) int
}

// RankedFiles merges raw query results into a deduplicated list ordered by
// non-decreasing distance to the subject, ties keeping query output order.
// Ranking happens before deduplication so the kept occurrence of a repeated
// path is always the closest one.
func RankedFiles(rawLists [][]string, opts Options) []string {
	distance := opts.Distance
	if distance == nil {
		distance = rank.Distance
	}

	type candidate struct {
		path string
		dist int
	}
	total := 0
	for _, list := range rawLists {
		total += len(list)
	}
	candidates := make([]candidate, 0, total)
	for _, list := range rawLists {
		for _, path := range list {
			candidates = append(candidates, candidate{path: path, dist: distance(opts.Subject, path)})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	allowed := allowedExtensions(opts)
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if allowed != nil {
			ext := Extension(c.path)
			if ext == "" || !allowed[ext] {
				continue
			}
		}
		if seen[c.path] {
			continue
		}
		seen[c.path] = true
		out = append(out, c.path)
	}
	return out
}

// allowedExtensions returns nil when filtering is inactive. When active, the
// subject's own extension is always implicitly allowed.
func allowedExtensions(opts Options) map[string]bool {
	if len(opts.Extensions) == 0 && !opts.FilterByExtension {
		return nil
	}
	allowed := make(map[string]bool, len(opts.Extensions)+1)
	for _, ext := range opts.Extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			allowed[ext] = true
		}
	}
	if ext := Extension(opts.Subject); ext != "" {
		allowed[ext] = true
	}
	return allowed
}

// Extension returns the file extension without its leading dot, or "" for
// paths that have none.
func Extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
