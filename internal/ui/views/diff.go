package views

import (
	"strings"

	"github.com/bakagit/bakagit/internal/ui"
)

// renderDiffColored colours a unified diff line by line.
func renderDiffColored(styles ui.Styles, diff string) string {
	if diff == "" {
		return styles.Muted.Render("No diff content")
	}
	var b strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "diff "),
			strings.HasPrefix(line, "+++"),
			strings.HasPrefix(line, "---"):
			b.WriteString(styles.DiffHeader.Render(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(styles.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(styles.DiffAdded.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(styles.DiffRemoved.Render(line))
		case strings.HasPrefix(line, "index "):
			b.WriteString(styles.Muted.Render(line))
		default:
			b.WriteString(styles.DiffContext.Render(line))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
