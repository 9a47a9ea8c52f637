// Package render lays out the organization stats and block art into the
// NFO-style SVG documents. All positioning assumes a fixed-advance monospace
// font, so x offsets are plain multiples of the character width.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/codeswhat/orgcard/internal/domain"
)

const (
	svgWidth     = 800
	fontSize     = 14
	textLineH    = 20
	blankLineH   = textLineH / 2
	artLineH     = 16
	yStart       = 30
	bottomMargin = 30
	contentWidth = 90

	// Assumed advance of the monospace fallback stack.
	charWidth = fontSize * 0.6
)

const (
	orgInfoHeader  = `---------------------------------------- ORG INFO ----------------------------------------`
	orgStatsHeader = `--------------------------------------- ORG STATS ----------------------------------------`
	projectsHeader = `--------------------------------------- PROJECTS -----------------------------------------`
)

type lineKind int

const (
	kindText lineKind = iota
	kindBlank
	kindLOC
	kindArt
)

// line is one row of the document. Only kindText carries a class; kindLOC is
// expanded into colored segments at write time and kindArt into color runs.
type line struct {
	kind  lineKind
	text  string
	class string
}

func textLine(text, class string) line {
	return line{kind: kindText, text: text, class: class}
}

var blankLine = line{kind: kindBlank}

func (l line) height() int {
	switch l.kind {
	case kindBlank:
		return blankLineH
	case kindArt:
		return artLineH
	default:
		return textLineH
	}
}

// Renderer produces the SVG documents. The clock only feeds the Last Updated
// line of the profile; pin it in tests for byte-identical output.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for the Last Updated line.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Profile renders the stats-bearing document for the given mode.
func (r *Renderer) Profile(mode Mode, stats domain.OrgStats) []byte {
	return r.document(mode, r.profileLines(stats), stats)
}

// Banner renders the art-only document for the given mode. No stats are
// involved and no date is embedded, so the output is fully deterministic.
func (r *Renderer) Banner(mode Mode) []byte {
	return r.document(mode, bannerLines(), domain.OrgStats{})
}

func (r *Renderer) document(mode Mode, lines []line, stats domain.OrgStats) []byte {
	palette := paletteFor(mode)
	height := yStart + bottomMargin
	for _, ln := range lines {
		height += ln.height()
	}

	var buf bytes.Buffer
	writeEnvelope(&buf, palette, height)
	y := yStart
	for _, ln := range lines {
		switch ln.kind {
		case kindText:
			if ln.text != "" {
				fmt.Fprintf(&buf, `<text x="%d" y="%d" text-anchor="middle" class="%s">%s</text>`+"\n",
					svgWidth/2, y, ln.class, escapeXML(ln.text))
			}
		case kindLOC:
			writeSegments(&buf, y, locSegments(stats))
		case kindArt:
			writeArtRow(&buf, y, ln.text)
		}
		y += ln.height()
	}
	buf.WriteString("</svg>")
	return buf.Bytes()
}

func (r *Renderer) profileLines(stats domain.OrgStats) []line {
	lines := make([]line, 0, 64)
	for _, row := range profileArt {
		lines = append(lines, textLine(row, "yellow"))
	}
	lines = append(lines,
		blankLine,
		textLine("C o d e s W h a t ?", "text"),
		blankLine,
		textLine("building things that make you go 'huh, neat'", "gray"),
		blankLine,
		blankLine,
	)

	languages := strings.Join(stats.Languages, ", ")
	if languages == "" {
		languages = "Various"
	}
	lines = append(lines,
		textLine(orgInfoHeader, "orange"),
		blankLine,
		textLine(statLine("Members", strconv.Itoa(stats.Members)), "gray"),
		textLine(statLine("Languages", languages), "gray"),
		textLine(statLine("Focus", "AI Tools, Developer Experience, Open Source"), "gray"),
		blankLine,
		blankLine,
	)

	lines = append(lines,
		textLine(orgStatsHeader, "green"),
		blankLine,
		textLine(statLine("Repositories", fmt.Sprintf("%d public / %d private", stats.PublicRepos, stats.PrivateRepos)), "gray"),
		textLine(statLine("Total Stars", strconv.Itoa(stats.TotalStars)), "gray"),
		textLine(statLine("Total Forks", strconv.Itoa(stats.TotalForks)), "gray"),
		textLine(statLine("Total Commits", formatNumber(stats.TotalCommits)), "gray"),
		textLine(statLine("Pull Requests", strconv.Itoa(stats.TotalPRs)), "gray"),
		line{kind: kindLOC},
		blankLine,
		blankLine,
	)

	lines = append(lines,
		textLine(projectsHeader, "magenta"),
		blankLine,
		textLine(statLine("whatsupdocker-ce", "container image update monitoring"), "gray"),
		textLine(statLine("smithers", "secure self-hosted AI assistant"), "gray"),
		textLine(statLine("mylair", "social platform for AI agents"), "gray"),
		blankLine,
		textLine("// CodesWhat? codes what needs coding.", "gray"),
		blankLine,
		textLine("Last Updated: "+r.now().Format("2006-01-02"), "gray"),
	)
	return lines
}

func bannerLines() []line {
	lines := make([]line, 0, len(bannerArt)+4)
	for _, row := range bannerArt {
		lines = append(lines, line{kind: kindArt, text: row})
	}
	lines = append(lines,
		blankLine,
		textLine("C o d e s W h a t ?", "text"),
		blankLine,
		textLine("building things that make you go 'huh, neat'", "gray"),
	)
	return lines
}

// segment is one colored slice of an inline multi-color line.
type segment struct {
	text  string
	class string
}

// locSegments builds the lines-of-code line. The whole line is dot-padded
// like any stat line (with a minimum of three dots so wide values stay
// legible), then split so additions render green and deletions red.
func locSegments(stats domain.OrgStats) []segment {
	total := humanize.Comma(int64(stats.LOCTotal))
	added := humanize.Comma(int64(stats.LOCAdded))
	deleted := humanize.Comma(int64(stats.LOCDeleted))

	const key = "Lines of Code:"
	value := fmt.Sprintf("%s ( +%s, -%s )", total, added, deleted)
	dotCount := contentWidth - len(key) - len(value) - 2
	if dotCount < 3 {
		dotCount = 3
	}
	dots := strings.Repeat(".", dotCount)

	return []segment{
		{key + " " + dots + " " + total + " ( ", "gray"},
		{"+" + added, "green"},
		{", ", "gray"},
		{"-" + deleted, "red"},
		{" )", "gray"},
	}
}

// writeSegments centers the concatenated segments as one line, then emits
// each segment at an x offset accumulated from the fixed character advance.
func writeSegments(buf *bytes.Buffer, y int, segments []segment) {
	total := 0
	for _, seg := range segments {
		total += utf8.RuneCountInString(seg.text)
	}
	x := (svgWidth - float64(total)*charWidth) / 2
	for _, seg := range segments {
		fmt.Fprintf(buf, `<text x="%.1f" y="%d" class="%s">%s</text>`+"\n",
			x, y, seg.class, escapeXML(seg.text))
		x += float64(utf8.RuneCountInString(seg.text)) * charWidth
	}
}

// writeArtRow emits the color runs of one banner art row. Every row shares
// the same left edge so the runs of successive rows line up.
func writeArtRow(buf *bytes.Buffer, y int, row string) {
	startX := (svgWidth - bannerArtWidth*charWidth) / 2
	for _, run := range artRuns(row) {
		fmt.Fprintf(buf, `<text x="%.1f" y="%d" class="%s">%s</text>`+"\n",
			startX+float64(run.index)*charWidth, y, run.class, escapeXML(run.text))
	}
}

func writeEnvelope(buf *bytes.Buffer, p Palette, height int) {
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		svgWidth, height, svgWidth, height)
	fmt.Fprintf(buf, `<style>
@font-face {
    src: local('Consolas'), local('Monaco'), local('Menlo');
    font-family: 'MonoFallback';
    font-display: swap;
}
text {
    font-family: 'MonoFallback', ui-monospace, SFMono-Regular, 'SF Mono', Menlo, Consolas, monospace;
    font-size: %dpx;
    white-space: pre;
    dominant-baseline: text-before-edge;
}
.text { fill: %s; }
.gray { fill: %s; }
.magenta { fill: %s; }
.green { fill: %s; }
.red { fill: %s; }
.orange { fill: %s; }
.yellow { fill: %s; }
</style>
`, fontSize, p.Text, p.Gray, p.Magenta, p.Green, p.Red, p.Orange, p.Yellow)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="%s" rx="10"/>`+"\n", svgWidth, height, p.Background)
}

// statLine lays out "key: .... value" dot-padded to the content width. Values
// too wide to pad lose the dots rather than overflow asymmetrically.
func statLine(key, value string) string {
	k := key + ":"
	dotCount := contentWidth - len(k) - len(value) - 2
	if dotCount < 0 {
		dotCount = 0
	}
	return k + " " + strings.Repeat(".", dotCount) + " " + value
}

// formatNumber abbreviates large counters with a K/M/B suffix.
func formatNumber(n int) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeXML escapes the three characters that can break SVG text content.
// The rendered alphabet is plain ASCII, so quotes need no treatment.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
