// Package report renders stored ingestion runs as Markdown and HTML.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"distio/ports"
)

// Builder renders run reports
type Builder struct {
	title string
}

// NewBuilder creates a report builder with the given document title
func NewBuilder(title string) *Builder {
	if title == "" {
		title = "Ingestion Run Report"
	}
	return &Builder{title: title}
}

// Markdown renders the run as a Markdown document with a metadata table
// and one row per stored value.
func (b *Builder) Markdown(record *ports.RunRecord) string {
	var md strings.Builder

	md.WriteString(fmt.Sprintf("# %s\n\n", b.title))
	md.WriteString(fmt.Sprintf("Run `%s` ingested from `%s`.\n\n", record.ID, record.Source))

	md.WriteString("| Field | Value |\n")
	md.WriteString("| --- | --- |\n")
	md.WriteString(fmt.Sprintf("| Source kind | %s |\n", record.SourceKind))
	md.WriteString(fmt.Sprintf("| Precision | %s |\n", record.Precision))
	md.WriteString(fmt.Sprintf("| Columns | %d |\n", len(record.Schema)))
	md.WriteString(fmt.Sprintf("| Data rows | %d |\n", record.Rows))
	md.WriteString(fmt.Sprintf("| Schema hash | `%s` |\n", record.SchemaHash))
	md.WriteString(fmt.Sprintf("| Created | %s |\n", record.CreatedAt.Time().Format(time.RFC3339)))
	md.WriteString("\n")

	md.WriteString("## Values\n\n")
	if len(record.Values) == 0 {
		md.WriteString("No values were fitted for this run.\n")
		return md.String()
	}

	md.WriteString("| Name | Kind | Representative | Samples | Mean | Variance | Min | Max | Median |\n")
	md.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, value := range record.Values {
		if value.Kind == ports.ValueKindEncoded {
			md.WriteString(fmt.Sprintf("| %s | %s | `%s` | - | - | - | - | - | - |\n",
				value.Name, value.Kind, value.Encoded))
			continue
		}
		if value.Stats == nil {
			md.WriteString(fmt.Sprintf("| %s | %s | %g | %d | - | - | - | - | - |\n",
				value.Name, value.Kind, value.Representative, value.SampleCount))
			continue
		}
		md.WriteString(fmt.Sprintf("| %s | %s | %g | %d | %g | %g | %g | %g | %g |\n",
			value.Name, value.Kind, value.Representative, value.SampleCount,
			value.Stats.Mean, value.Stats.Variance, value.Stats.Min, value.Stats.Max,
			value.Stats.Median))
	}

	if shape := b.shapeSection(record); shape != "" {
		md.WriteString("\n## Shape\n\n")
		md.WriteString(shape)
	}

	return md.String()
}

// shapeSection lists skewness, kurtosis, and the normality verdict for
// values that carry a stats block.
func (b *Builder) shapeSection(record *ports.RunRecord) string {
	var md strings.Builder

	for _, value := range record.Values {
		if value.Stats == nil {
			continue
		}
		verdict := "non-normal"
		if value.Stats.IsNormal {
			verdict = "approximately normal"
		}
		md.WriteString(fmt.Sprintf("- **%s**: skewness %.3f, kurtosis %.3f, %s (p=%.3f)\n",
			value.Name, value.Stats.Skewness, value.Stats.Kurtosis, verdict,
			value.Stats.NormalityP))
	}

	return md.String()
}

// HTML renders the Markdown report to a complete HTML page.
func (b *Builder) HTML(record *ports.RunRecord) []byte {
	source := []byte(b.Markdown(record))

	// Parser instances are single-use.
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(source)

	renderer := html.NewRenderer(html.RendererOptions{
		Title: b.title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.Render(doc, renderer)
}
