package render

import (
	"io"
	"sort"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/keibalab/jvspec/internal/methods"
	"github.com/keibalab/jvspec/internal/models"
)

// sectionHeadings maps the Japanese bracket labels of the method
// reference onto the published English headings. Unmapped labels render
// under their original key.
var sectionHeadings = map[string]string{
	"構文":       "Syntax",
	"パラメータ":    "Parameters",
	"戻り値":      "Return Value",
	"解説":       "Explanation",
	"補足":       "Notes",
	"イベント":     "Event Overview",
	"イベント構文":   "Event Callback Signature",
	"イベント使用方法": "Sample Usage",
}

// MethodReference writes the grouped method documentation: one section
// per group with its member summaries and translated section headings.
// Syntax sections render as code blocks.
func MethodReference(w io.Writer, groups []models.MethodGroup) error {
	d := newDoc()
	d.h1("JV-Link Method Reference").blank()
	d.text("Source: `JV-Link4901` specification (v4.9.0.1).").blank()
	for _, group := range groups {
		d.h2(group.Title).blank()
		for _, m := range group.Methods {
			d.bullet(md.Bold(m.Name) + " — " + m.Summary)
		}
		d.blank()
		for _, section := range group.Sections {
			if section.Body == "" {
				continue
			}
			heading, ok := sectionHeadings[section.Key]
			if !ok {
				heading = section.Key
			}
			d.h3(heading)
			if heading == "Syntax" || strings.Contains(section.Key, "構文") {
				d.codeBlock(section.Body)
			} else {
				d.text(section.Body)
			}
			d.blank()
		}
	}
	return d.finish(w)
}

// Properties writes the control property table.
func Properties(w io.Writer, properties []models.PropertyEntry) error {
	d := newDoc()
	d.h1("JV-Link Properties").blank()
	d.text("Source: `JV-Link4901` specification (v4.9.0.1).").blank()
	d.row([]string{"Type", "Name", "Description"})
	d.separator(3)
	for _, p := range properties {
		d.row(escapeCells([]string{p.Type, p.Name, p.Description}))
	}
	return d.finish(w)
}

// ErrorCodes writes the raw error-code table ordered by the declared
// position of the first known method and then by numeric code.
func ErrorCodes(w io.Writer, entries []models.ErrorCodeEntry) error {
	ordered := append([]models.ErrorCodeEntry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return errorEntryLess(ordered[i], ordered[j])
	})

	d := newDoc()
	d.h1("JV-Link Error Codes").blank()
	d.text("Source: `JV-Link4901` specification (v4.9.0.1).").blank()
	d.row([]string{"Method(s)", "Code", "Meaning", "Notes"})
	d.separator(4)
	for _, e := range ordered {
		d.row(escapeCells([]string{strings.Join(e.Methods, ", "), e.Code, e.Meaning, e.Notes}))
	}
	return d.finish(w)
}

func errorEntryLess(a, b models.ErrorCodeEntry) bool {
	ao, bo := methodOrder(a.Methods), methodOrder(b.Methods)
	if ao != bo {
		return ao < bo
	}
	an, av := numericCode(a.Code)
	bn, bv := numericCode(b.Code)
	if an != bn {
		return an
	}
	if an {
		return av < bv
	}
	return a.Code < b.Code
}

// methodOrder returns the declared position of the first known method,
// or the end of the name table when none is known.
func methodOrder(names []string) int {
	best := len(methods.Names)
	for _, name := range names {
		if idx := methods.Index(name); idx < best {
			best = idx
		}
	}
	return best
}

// numericCode parses a code cell as a number, folding the full-width
// minus the sheet sometimes carries.
func numericCode(code string) (bool, float64) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(code, "－", "-")), 64)
	if err != nil {
		return false, 0
	}
	return true, v
}

// EventCallbacks writes the JVWatchEvent grids. The grid headers come
// from the source tables and render as-is.
func EventCallbacks(w io.Writer, tables models.EventTables) error {
	d := newDoc()
	d.h1("JV-Link Event Callbacks").blank()
	d.text("Extracted from the `JVWatchEvent` section of `JV-Link4901`.").blank()
	if len(tables.Callbacks) > 0 {
		d.h2("Event Types")
		writeEventGrid(d, tables.Callbacks)
	}
	if len(tables.Parameters) > 0 {
		d.h2("Callback Parameters")
		writeEventGrid(d, tables.Parameters)
	}
	return d.finish(w)
}

func writeEventGrid(d *doc, grid [][]string) {
	header := grid[0]
	d.row(header)
	d.separator(len(header))
	for _, row := range grid[1:] {
		d.row(escapeCells(padTo(row, len(header))[:len(header)]))
	}
	d.blank()
}
