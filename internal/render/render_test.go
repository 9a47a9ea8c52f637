package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeswhat/orgcard/internal/domain"
)

// testRenderer pins the clock so renders are byte-for-byte reproducible.
func testRenderer() *Renderer {
	return New(WithClock(func() time.Time {
		return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	}))
}

func sampleStats() domain.OrgStats {
	return domain.OrgStats{
		PublicRepos:  3,
		PrivateRepos: 1,
		TotalRepos:   4,
		TotalStars:   42,
		TotalForks:   7,
		TotalCommits: 500,
		TotalPRs:     10,
		TotalIssues:  5,
		Members:      2,
		LOCAdded:     1000,
		LOCDeleted:   200,
		LOCTotal:     800,
		Languages:    []string{"Go", "Python"},
	}
}

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		in       int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{999_999, "1000.0K"},
		{1_500_000, "1.5M"},
		{2_000_000_000, "2.0B"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatNumber(tc.in))
		})
	}
}

func TestEscapeXML(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{"all three specials", "a&b<c>d", "a&amp;b&lt;c&gt;d"},
		{"safe characters unchanged", "Lines of Code: .... 800 ( +1, -2 )", "Lines of Code: .... 800 ( +1, -2 )"},
		{"single pass over existing entities", "&amp;", "&amp;amp;"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, escapeXML(tc.in))
		})
	}
}

func TestStatLine(t *testing.T) {
	t.Run("pads with dots to the content width", func(t *testing.T) {
		got := statLine("Members", "2")
		assert.Len(t, got, contentWidth)
		assert.True(t, strings.HasPrefix(got, "Members: ."))
		assert.True(t, strings.HasSuffix(got, ". 2"))
	})

	t.Run("dot count never goes negative", func(t *testing.T) {
		got := statLine("Key", strings.Repeat("x", contentWidth))
		assert.NotContains(t, got, ".")
		assert.Equal(t, "Key:  "+strings.Repeat("x", contentWidth), got)
	})
}

func TestLOCSegments(t *testing.T) {
	segments := locSegments(sampleStats())
	require.Len(t, segments, 5)

	assert.Equal(t, []string{"gray", "green", "gray", "red", "gray"}, []string{
		segments[0].class, segments[1].class, segments[2].class, segments[3].class, segments[4].class,
	})
	assert.Equal(t, "+1,000", segments[1].text)
	assert.Equal(t, "-200", segments[3].text)

	var full strings.Builder
	for _, seg := range segments {
		full.WriteString(seg.text)
	}
	assert.Len(t, full.String(), contentWidth)
	assert.Contains(t, full.String(), "Lines of Code: ")
	assert.Contains(t, full.String(), " 800 ( +1,000, -200 )")
}

func TestLOCSegmentsKeepsMinimumDots(t *testing.T) {
	const huge = 9_223_372_036_854_775_807
	wide := domain.OrgStats{LOCAdded: huge, LOCDeleted: huge, LOCTotal: huge}
	segments := locSegments(wide)
	require.NotEmpty(t, segments)
	assert.Contains(t, segments[0].text, " ... ")
}

func TestProfileDeterminism(t *testing.T) {
	renderer := testRenderer()
	first := renderer.Profile(Dark, sampleStats())
	second := renderer.Profile(Dark, sampleStats())
	assert.Equal(t, first, second)

	light := renderer.Profile(Light, sampleStats())
	assert.NotEqual(t, first, light)
}

func TestProfileScenario(t *testing.T) {
	svg := string(testRenderer().Profile(Dark, sampleStats()))

	// The lines-of-code value sits in the gray prefix segment with the
	// colored additions and deletions immediately after it.
	assert.Contains(t, svg, ` 800 ( </text>`)
	assert.Contains(t, svg, `class="green">+1,000</text>`)
	assert.Contains(t, svg, `class="red">-200</text>`)

	assert.Contains(t, svg, "Total Stars:")
	assert.Contains(t, svg, " 42</text>")
	assert.Contains(t, svg, "Repositories:")
	assert.Contains(t, svg, "3 public / 1 private")
	assert.Contains(t, svg, "Go, Python")
	assert.Contains(t, svg, "Last Updated: 2026-08-23")
}

func TestProfileLayout(t *testing.T) {
	svg := string(testRenderer().Profile(Dark, sampleStats()))

	// The fixed line sequence always yields the same document height.
	assert.Contains(t, svg, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="1010" viewBox="0 0 800 1010">`)
	assert.Contains(t, svg, `<rect width="800" height="1010" fill="#0d1117" rx="10"/>`)
	assert.Contains(t, svg, "font-size: 14px;")
	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestProfilePalettes(t *testing.T) {
	testCases := []struct {
		mode       Mode
		background string
		text       string
	}{
		{Dark, "#0d1117", "#39c5cf"},
		{Light, "#f6f8fa", "#0969da"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.mode), func(t *testing.T) {
			svg := string(testRenderer().Profile(tc.mode, sampleStats()))
			assert.Contains(t, svg, fmt.Sprintf(`fill="%s"`, tc.background))
			assert.Contains(t, svg, fmt.Sprintf(".text { fill: %s; }", tc.text))
		})
	}
}

func TestProfileEmptyStats(t *testing.T) {
	svg := string(testRenderer().Profile(Dark, domain.ZeroStats()))

	assert.Contains(t, svg, "Various")
	assert.Contains(t, svg, "0 public / 0 private")
	assert.Contains(t, svg, `class="green">+0</text>`)
	assert.Contains(t, svg, `class="red">-0</text>`)
}

func TestBannerDeterministic(t *testing.T) {
	renderer := New()
	first := renderer.Banner(Dark)
	second := renderer.Banner(Dark)
	assert.Equal(t, first, second)
	assert.NotContains(t, string(first), "Last Updated")
}

func TestBannerContent(t *testing.T) {
	svg := string(New().Banner(Dark))

	assert.Contains(t, svg, "C o d e s W h a t ?")
	assert.Contains(t, svg, "building things that make you go 'huh, neat'")
	assert.Contains(t, svg, `class="yellow">`)
	assert.Contains(t, svg, `class="orange">`)
	assert.Contains(t, svg, `class="gray">`)
}
