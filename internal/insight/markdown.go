package insight

import (
	"fmt"
	"strings"
)

// Markdown renders a payload as a markdown document
func Markdown(title, value string, p Payload) string {
	var b strings.Builder

	if title != "" {
		if value != "" {
			fmt.Fprintf(&b, "# %s: %s\n\n", title, value)
		} else {
			fmt.Fprintf(&b, "# %s\n\n", title)
		}
	}

	b.WriteString("## Root Cause\n\n")
	b.WriteString(p.Narrative)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "## %s\n\n", p.Noun())
	visible := p.Visible()
	if len(visible) == 0 {
		fmt.Fprintf(&b, "_%s_\n\n", NoAnomaliesText)
	} else {
		b.WriteString("| ID | Name | Location | Status |\n")
		b.WriteString("|----|------|----------|--------|\n")
		for _, item := range visible {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				escapeCell(item.ID), escapeCell(item.Name), escapeCell(item.Location), escapeCell(item.Status))
		}
		b.WriteString("\n")
		if n := p.Overflow(); n > 0 {
			fmt.Fprintf(&b, "_+%d more — View Full List_\n\n", n)
		}
	}

	b.WriteString("## Impact\n\n")
	fmt.Fprintf(&b, "- **Financial:** %s\n", p.Impact.Financial)
	fmt.Fprintf(&b, "- **Operational:** %s\n\n", p.Impact.Operational)

	b.WriteString("## Recommended Action\n\n")
	b.WriteString(p.RecommendedAction)
	b.WriteString("\n")

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
