// Package report renders query results as markdown for terminal output.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/atelier-tools/sift/pkg/domain"
)

// Markdown renders a query result as a markdown document.
func Markdown(res *domain.QueryResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Query result\n\n")
	fmt.Fprintf(&b, "**%d** matched, **%d** nodes on the current page.\n\n", res.Count, res.CurrentPageCount)

	if len(res.Elements) > 0 {
		b.WriteString("| # | Name | Page | ID |\n|---|------|------|----|\n")
		for i, el := range res.Elements {
			fmt.Fprintf(&b, "| %d | %s | %s | `%s` |\n", i+1, el.Name, el.PageName, el.ID)
		}
		b.WriteString("\n")
	}
	if len(res.Styles) > 0 {
		b.WriteString("| # | Style | Type |\n|---|-------|------|\n")
		for i, s := range res.Styles {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, s.Name, s.StyleType)
		}
		b.WriteString("\n")
	}
	if len(res.Variables) > 0 {
		b.WriteString("| Collection | Mode | Variable | Value |\n|------------|------|----------|-------|\n")
		for _, v := range res.Variables {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", v.Collection, v.Mode, v.Name, v.Value)
		}
		b.WriteString("\n")
	}
	if res.Download != nil {
		fmt.Fprintf(&b, "Download ready: **%s** (%d bytes)\n", res.Download.Name, len(res.Download.Data))
	}
	return b.String()
}

// Snapshot renders a single-element attribute snapshot as markdown.
func Snapshot(attrs []domain.AttributeValue) string {
	var b strings.Builder
	b.WriteString("# Element\n\n| Attribute | Value |\n|-----------|-------|\n")
	for _, a := range attrs {
		fmt.Fprintf(&b, "| %s | %v |\n", a.Key, a.Value)
	}
	return b.String()
}

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects the terminal background style.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
