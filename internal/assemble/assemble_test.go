package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexicalDistance mirrors the tree metric without touching the filesystem.
func lexicalDistance(a, b string) int {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	common := 0
	for common < len(as) && common < len(bs) && as[common] == bs[common] {
		common++
	}
	return (len(as) - common) + (len(bs) - common)
}

func TestRankedFilesOrdersByProximity(t *testing.T) {
	got := RankedFiles([][]string{{"other/c.rs", "pkg/sub/d.rs", "pkg/b.rs"}}, Options{
		Subject:           "pkg/a.rs",
		FilterByExtension: true,
		Distance:          lexicalDistance,
	})

	require.Equal(t, []string{"pkg/b.rs", "pkg/sub/d.rs", "other/c.rs"}, got)
}

func TestRankedFilesStableForEqualDistance(t *testing.T) {
	got := RankedFiles([][]string{{"pkg/z.rs", "pkg/m.rs", "pkg/b.rs"}}, Options{
		Subject:  "pkg/a.rs",
		Distance: lexicalDistance,
	})

	// All siblings tie at distance 2; query output order must survive.
	require.Equal(t, []string{"pkg/z.rs", "pkg/m.rs", "pkg/b.rs"}, got)
}

func TestRankedFilesDeduplicatesKeepingClosest(t *testing.T) {
	got := RankedFiles([][]string{
		{"other/c.rs", "pkg/b.rs"},
		{"pkg/b.rs", "other/c.rs"},
	}, Options{
		Subject:  "pkg/a.rs",
		Distance: lexicalDistance,
	})

	require.Equal(t, []string{"pkg/b.rs", "other/c.rs"}, got)
}

func TestRankedFilesExtensionFilter(t *testing.T) {
	lists := [][]string{{"pkg/foo.py", "pkg/bar.rs", "pkg/Makefile", "pkg/b.rs"}}

	t.Run("explicit allow-list", func(t *testing.T) {
		got := RankedFiles(lists, Options{
			Subject:    "pkg/a.rs",
			Extensions: []string{".rs"},
			Distance:   lexicalDistance,
		})
		assert.Equal(t, []string{"pkg/bar.rs", "pkg/b.rs"}, got)
	})

	t.Run("subject extension implicitly allowed", func(t *testing.T) {
		got := RankedFiles(lists, Options{
			Subject:    "pkg/a.rs",
			Extensions: []string{"py"},
			Distance:   lexicalDistance,
		})
		assert.Equal(t, []string{"pkg/foo.py", "pkg/bar.rs", "pkg/b.rs"}, got)
	})

	t.Run("implicit subject filter", func(t *testing.T) {
		got := RankedFiles(lists, Options{
			Subject:           "pkg/a.rs",
			FilterByExtension: true,
			Distance:          lexicalDistance,
		})
		assert.Equal(t, []string{"pkg/bar.rs", "pkg/b.rs"}, got)
	})

	t.Run("filtering disabled keeps everything", func(t *testing.T) {
		got := RankedFiles(lists, Options{
			Subject:  "pkg/a.rs",
			Distance: lexicalDistance,
		})
		assert.Equal(t, []string{"pkg/foo.py", "pkg/bar.rs", "pkg/Makefile", "pkg/b.rs"}, got)
	})

	t.Run("no extension is never a wildcard", func(t *testing.T) {
		got := RankedFiles([][]string{{"pkg/Makefile"}}, Options{
			Subject:           "pkg/a.rs",
			FilterByExtension: true,
			Distance:          lexicalDistance,
		})
		assert.Empty(t, got)
	})
}

func TestRankedFilesEmptyInput(t *testing.T) {
	assert.Empty(t, RankedFiles(nil, Options{Subject: "pkg/a.rs", Distance: lexicalDistance}))
	assert.Empty(t, RankedFiles([][]string{{}, {}}, Options{Subject: "pkg/a.rs", Distance: lexicalDistance}))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "rs", Extension("pkg/a.rs"))
	assert.Equal(t, "gz", Extension("dist/bundle.tar.gz"))
	assert.Equal(t, "", Extension("pkg/Makefile"))
	assert.Equal(t, "", Extension(""))
}
