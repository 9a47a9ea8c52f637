package render

// profileArt is the question-mark header of the profile document. Each row is
// emitted as one centered text element, so trailing spaces matter under
// white-space: pre.
var profileArt = []string{
	`                                                                                          `,
	`                                     **********************                               `,
	`                                  ****************************                            `,
	`                                ****     ******************  ****                          `,
	`                               ***          ************       ***                         `,
	`                               ***           **********        ***                         `,
	`                               ***            ********         ***                         `,
	`                                ****          ********       ****                          `,
	`                                  ****       ********     ****                             `,
	`                                    ****    ********    ****                               `,
	`                                      ***  ********   ***                                  `,
	`                                       *** ******** ***                                    `,
	`                                        ** ******** **                                     `,
	`                                           ********                                        `,
	`                                           ********                                        `,
	`                                            ******                                         `,
	`                                             ****                                          `,
	`                                                                                          `,
	`                                             ****                                          `,
	`                                            ******                                         `,
	`                                             ****                                          `,
	`                                                                                          `,
}

// bannerArtWidth is the column count every banner row is padded to; the rows
// share one left edge so the runs line up.
const bannerArtWidth = 93

// bannerArt is the shaded question mark of the banner document: '#' core,
// '+' edges, '.' halo.
var bannerArt = []string{
	`                                    .+####################+.                                 `,
	`                                 .+##########################+.                              `,
	`                               .+##+.   .+################+..+##+.                           `,
	`                              .+++.        .+##########+.     .+++.                          `,
	`                              .+++.         .+########+.      .+++.                          `,
	`                              .+++.          .+######+.       .+++.                          `,
	`                               .+##+.        .+######+.     .+##+.                           `,
	`                                 .+##+.     .+######+.   .+##+.                              `,
	`                                   .+##+.  .+######+.  .+##+.                                `,
	`                                     .+++..+######+. .+++.                                   `,
	`                                      .+++.+######+.+++.                                     `,
	`                                       .++.+######+.++.                                      `,
	`                                          .+######+.                                         `,
	`                                          .+######+.                                         `,
	`                                           .+####+.                                          `,
	`                                            .+##+.                                           `,
	`                                                                                             `,
	`                                            .+##+.                                           `,
	`                                           .+####+.                                          `,
	`                                            .+##+.                                           `,
}

// artClass maps a block-art character to its palette class. Whitespace and
// anything unclassified produce no run at all.
func artClass(ch byte) string {
	switch ch {
	case '#':
		return "yellow"
	case '+', '-':
		return "orange"
	case '.':
		return "gray"
	default:
		return ""
	}
}

// artRun is a maximal stretch of same-class characters within one art row.
type artRun struct {
	index int // starting column within the row
	text  string
	class string
}

// artRuns run-length encodes one art row over artClass, skipping whitespace,
// so every row gets the minimal number of styled text elements.
func artRuns(row string) []artRun {
	var runs []artRun
	start := 0
	for start < len(row) {
		class := artClass(row[start])
		if class == "" {
			start++
			continue
		}
		end := start + 1
		for end < len(row) && artClass(row[end]) == class {
			end++
		}
		runs = append(runs, artRun{index: start, text: row[start:end], class: class})
		start = end
	}
	return runs
}
