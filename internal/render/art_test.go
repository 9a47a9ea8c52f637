package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtRuns(t *testing.T) {
	testCases := []struct {
		name     string
		row      string
		expected []artRun
	}{
		{
			name:     "empty row yields no runs",
			row:      "    ",
			expected: nil,
		},
		{
			name: "classes split runs and whitespace is skipped",
			row:  "  .+##+.  ##",
			expected: []artRun{
				{index: 2, text: ".", class: "gray"},
				{index: 3, text: "+", class: "orange"},
				{index: 4, text: "##", class: "yellow"},
				{index: 6, text: "+", class: "orange"},
				{index: 7, text: ".", class: "gray"},
				{index: 10, text: "##", class: "yellow"},
			},
		},
		{
			name: "plus and minus share one run",
			row:  "+-+#",
			expected: []artRun{
				{index: 0, text: "+-+", class: "orange"},
				{index: 3, text: "#", class: "yellow"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, artRuns(tc.row))
		})
	}
}

// The run splitting must never lose or duplicate characters: per row, the
// concatenated run texts equal the row with whitespace removed.
func TestArtRunsPreserveCharacters(t *testing.T) {
	for i, row := range bannerArt {
		var joined strings.Builder
		for _, run := range artRuns(row) {
			joined.WriteString(run.text)
		}
		assert.Equal(t, strings.ReplaceAll(row, " ", ""), joined.String(), "row %d", i)
	}
}

func TestArtRunsAreMaximal(t *testing.T) {
	for i, row := range bannerArt {
		runs := artRuns(row)
		for j := 1; j < len(runs); j++ {
			prev, cur := runs[j-1], runs[j]
			if prev.index+len(prev.text) == cur.index {
				assert.NotEqual(t, prev.class, cur.class, "row %d: adjacent runs %d and %d should have merged", i, j-1, j)
			}
		}
	}
}

func TestBannerArtShape(t *testing.T) {
	require.Len(t, bannerArt, 20)
	for i, row := range bannerArt {
		assert.LessOrEqual(t, len(row), bannerArtWidth, "row %d overflows the art width", i)
		for j := 0; j < len(row); j++ {
			ch := row[j]
			assert.True(t, ch == ' ' || artClass(ch) != "", "row %d has unclassified character %q at column %d", i, ch, j)
		}
	}
}
