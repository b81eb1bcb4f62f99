package render

import (
	"fmt"
	"io"

	md "github.com/nao1215/markdown"

	"github.com/keibalab/jvspec/internal/models"
)

// RecordFormats writes the record layout document from the フォーマット
// sheet: one section per record with its full field table.
func RecordFormats(w io.Writer, records []models.RecordFormat) error {
	d := newDoc()
	d.h1("JV-Data Record Formats").blank()
	d.text("Source: `JV-Data4901.xlsx` (official JV-Data specification).").blank()
	for _, rec := range records {
		title := rec.RawTitle
		if title == "" {
			title = rec.Title
		}
		if title == "" {
			title = "Unnamed"
		}
		d.h2(fmt.Sprintf("%s (Record Length: %s bytes)", title, rec.Length))
		d.row([]string{"No", "Key", "Field", "Position", "Repeat", "Bytes", "Total", "Default", "Description"})
		d.separator(9)
		for _, f := range rec.Fields {
			d.row(escapeCells([]string{f.No, f.Key, f.Name, f.Position, f.Repeat, f.Bytes, f.Total, f.Default, f.Description}))
		}
		d.blank()
	}
	return d.finish(w)
}

// CodeTables writes the titled code tables of the コード表 sheet. Rows
// keep their ragged widths: the header and every row pad out to the
// widest row in the table.
func CodeTables(w io.Writer, tables []models.GenericTable, title string) error {
	d := newDoc()
	d.h1(title).blank()
	d.text(fmt.Sprintf("Source: `JV-Data4901.xlsx` – %s.", title)).blank()
	for _, table := range tables {
		d.h2(table.Title)
		header := table.Header
		if len(header) == 0 {
			header = []string{"Column 1"}
		}
		width := len(header)
		for _, row := range table.Rows {
			if len(row) > width {
				width = len(row)
			}
		}
		cells := make([]string, width)
		for i, cell := range padTo(header, width) {
			if cells[i] = escapeCell(cell); cells[i] == "" {
				cells[i] = " "
			}
		}
		d.row(cells)
		d.separator(width)
		for _, row := range table.Rows {
			d.row(escapeCells(padTo(row, width)))
		}
		d.blank()
	}
	return d.finish(w)
}

// DataTypeList writes the dataset catalogue grouped by dataset kind.
func DataTypeList(w io.Writer, sections []models.SheetSection) error {
	d := newDoc()
	d.h1("JV-Data Dataset Catalogue").blank()
	d.text("Source: `JV-Data4901.xlsx` – データ種別一覧.").blank()
	for _, section := range sections {
		d.h2(section.Key)
		if len(section.Rows) == 0 {
			d.blank()
			continue
		}
		header := section.Rows[0]
		d.row(escapeCells(header))
		d.separator(len(header))
		for _, row := range section.Rows[1:] {
			d.row(escapeCells(padTo(row, len(header))[:len(header)]))
		}
		d.blank()
	}
	return d.finish(w)
}

// DeliverySchedule writes the delivery timing tables grouped by dataset
// kind. Sections without rows are dropped.
func DeliverySchedule(w io.Writer, sections []models.SheetSection) error {
	d := newDoc()
	d.h1("Data Delivery Timing").blank()
	d.text("Source: `JV-Data4901.xlsx` – データ提供タイミング・提供単位.").blank()
	for _, section := range sections {
		if len(section.Rows) == 0 {
			continue
		}
		d.h2(section.Key)
		header := section.Rows[0]
		d.row(escapeCells(header))
		d.separator(len(header))
		for _, row := range section.Rows[1:] {
			d.row(escapeCells(padTo(row, len(header))[:len(header)]))
		}
		d.blank()
	}
	return d.finish(w)
}

// SpecialNotes writes the flat note paragraphs of the 特記事項 sheet.
func SpecialNotes(w io.Writer, paragraphs []string) error {
	d := newDoc()
	d.h1("JV-Data Special Notes").blank()
	d.text("Source: `JV-Data4901.xlsx` – 特記事項.").blank()
	for _, p := range paragraphs {
		d.text(p)
	}
	return d.finish(w)
}

// ChangeHistory writes the revision table of the 変更履歴 sheet.
func ChangeHistory(w io.Writer, entries []models.ChangeHistoryEntry) error {
	d := newDoc()
	d.h1("JV-Data Change History").blank()
	d.text("Source: `JV-Data4901.xlsx` – 変更履歴.").blank()
	d.row([]string{"Date", "Version", "Important Change", "Item No", "Page", "Description"})
	d.separator(6)
	for _, e := range entries {
		d.row(escapeCells([]string{e.Date, e.Version, e.Importance, e.Item, e.Page, e.Description}))
	}
	return d.finish(w)
}

// VersionInfo writes the version metadata stamped on the 表紙 sheet.
func VersionInfo(w io.Writer, info models.VersionInfo) error {
	d := newDoc()
	d.h1("Specification Version").blank()
	d.text("Source: `JV-Data4901.xlsx` – 表紙シート.").blank()
	found := false
	if info.Version != "" {
		d.bullet(md.Bold("Version:") + " " + info.Version)
		found = true
	}
	if info.Updated != "" {
		d.bullet(md.Bold("Updated:") + " " + info.Updated)
		found = true
	}
	if !found {
		d.bullet("No version metadata found.")
	}
	return d.finish(w)
}
