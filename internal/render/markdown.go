// Package render produces the Markdown documents published from one
// extraction run: the method reference, the property and error tables,
// the event grids, and the seven workbook-derived documents.
package render

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"
)

// doc wraps the markdown builder with the helpers the renderers share.
// Table rows are assembled cell by cell because downstream readers (the
// catalog reader in particular) depend on the exact row layout, which
// the library's table writer reflows.
type doc struct {
	buf *strings.Builder
	md  *md.Markdown
}

func newDoc() *doc {
	buf := &strings.Builder{}
	return &doc{buf: buf, md: md.NewMarkdown(buf)}
}

func (d *doc) h1(title string) *doc {
	d.md.H1(title)
	return d
}

func (d *doc) h2(title string) *doc {
	d.md.H2(title)
	return d
}

func (d *doc) h3(title string) *doc {
	d.md.H3(title)
	return d
}

func (d *doc) text(line string) *doc {
	d.md.PlainText(line)
	return d
}

func (d *doc) blank() *doc {
	d.md.PlainText("")
	return d
}

func (d *doc) row(cells []string) *doc {
	d.md.PlainText("| " + strings.Join(cells, " | ") + " |")
	return d
}

func (d *doc) separator(width int) *doc {
	cells := make([]string, width)
	for i := range cells {
		cells[i] = "---"
	}
	return d.row(cells)
}

func (d *doc) bullet(text string) *doc {
	d.md.BulletList(text)
	return d
}

func (d *doc) codeBlock(body string) *doc {
	d.md.CodeBlocks(md.SyntaxHighlight("text"), body)
	return d
}

// finish builds the document and writes it out with a single trailing
// newline, dropping the blank lines the section loops leave at the end.
func (d *doc) finish(w io.Writer) error {
	if err := d.md.Build(); err != nil {
		return fmt.Errorf("failed to build document: %w", err)
	}
	if _, err := io.WriteString(w, strings.TrimSpace(d.buf.String())+"\n"); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// escapeCell makes a cell safe inside a single-line table row.
func escapeCell(text string) string {
	return strings.ReplaceAll(strings.ReplaceAll(text, "|", `\|`), "\n", "<br>")
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = escapeCell(cell)
	}
	return out
}

// padTo extends row with empty cells up to width.
func padTo(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
