package catalog

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteSource writes the consolidated entries as the Go source of the
// jvlink catalog package. The output is stable for a given input so the
// generated file can be committed and diffed.
func WriteSource(w io.Writer, entries []Entry) error {
	var b strings.Builder
	b.WriteString("// Code generated by jvspec catalog. DO NOT EDIT.\n")
	b.WriteString("\npackage jvlink\n\n")
	b.WriteString("var entries = []ErrorInfo{\n")
	for _, entry := range entries {
		writeEntry(&b, entry)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("failed to write catalog source: %w", err)
	}
	return nil
}

func writeEntry(b *strings.Builder, entry Entry) {
	b.WriteString("\t{\n")
	fmt.Fprintf(b, "\t\tErrorBase: ErrorBase{Code: %d, Category: %s, Message: %s, Documentation: %s},\n",
		entry.Code, categoryConst(entry.Category), strconv.Quote(entry.Message), strconv.Quote(entry.Documentation))

	quoted := make([]string, 0, len(entry.Methods))
	for _, m := range entry.Methods {
		quoted = append(quoted, strconv.Quote(m))
	}
	fmt.Fprintf(b, "\t\tMethods:   []string{%s},\n", strings.Join(quoted, ", "))

	if len(entry.Overrides) == 0 {
		b.WriteString("\t\tOverrides: map[string]ErrorOverride{},\n")
	} else {
		b.WriteString("\t\tOverrides: map[string]ErrorOverride{\n")
		keys := make([]string, 0, len(entry.Overrides))
		width := 0
		for method := range entry.Overrides {
			keys = append(keys, method)
			if l := len(strconv.Quote(method)) + 1; l > width {
				width = l
			}
		}
		sort.Strings(keys)
		for _, method := range keys {
			fmt.Fprintf(b, "\t\t\t%-*s %s,\n", width, strconv.Quote(method)+":", overrideLiteral(entry.Overrides[method]))
		}
		b.WriteString("\t\t},\n")
	}
	b.WriteString("\t},\n")
}

func overrideLiteral(ov Override) string {
	var fields []string
	if ov.Category != "" {
		fields = append(fields, "Category: "+categoryConst(ov.Category))
	}
	if ov.Message != "" {
		fields = append(fields, "Message: "+strconv.Quote(ov.Message))
	}
	if ov.Doc != "" {
		fields = append(fields, "Documentation: "+strconv.Quote(ov.Doc))
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

func categoryConst(category string) string {
	if category == "" {
		return "CategoryOther"
	}
	return "Category" + strings.ToUpper(category[:1]) + category[1:]
}

func escapePipes(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}

// WriteTable rewrites the error-codes document from the parsed records,
// dropping the continuation rows that were folded during reading.
func WriteTable(w io.Writer, records []Record) error {
	lines := []string{
		"# JV-Link Error Codes",
		"",
		"Source: `JV-Link4901` specification (v4.9.0.1).",
		"",
		"| Method(s) | Code | Meaning | Notes |",
		"| --- | --- | --- | --- |",
	}
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf("| %s | %d | %s | %s |",
			strings.Join(rec.Methods, ", "), rec.Code, escapePipes(rec.Meaning), escapePipes(rec.Notes)))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return fmt.Errorf("failed to write error table: %w", err)
	}
	return nil
}
