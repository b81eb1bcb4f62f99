// Package pipeline orchestrates the extraction of the official JV-Link
// documents into typed records, the rendering of the Markdown reference
// set, and the generation of the error-code lookup source.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/keibalab/jvspec/internal/catalog"
	"github.com/keibalab/jvspec/internal/config"
	"github.com/keibalab/jvspec/internal/markup"
	"github.com/keibalab/jvspec/internal/methods"
	"github.com/keibalab/jvspec/internal/models"
	"github.com/keibalab/jvspec/internal/parse"
	"github.com/keibalab/jvspec/internal/render"
	"github.com/keibalab/jvspec/internal/sheet"
	"go.uber.org/zap"
)

// Workbook sheet names as published by JRA-VAN. The delivery sheet name
// carries a half-width katakana middle dot.
const (
	sheetRecordFormats = "フォーマット"
	sheetCodeTables    = "コード表"
	sheetDataTypes     = "データ種別一覧"
	sheetDelivery      = "データ提供タイミング･提供単位"
	sheetNotes         = "特記事項"
	sheetHistory       = "変更履歴"
	sheetCover         = "表紙"
)

// ErrorTableName is the rendered document the catalog stage consumes.
const ErrorTableName = "error_codes.md"

// Pipeline runs extraction, rendering and catalog generation over the
// configured source documents.
type Pipeline struct {
	cfg    *config.Config
	logger *zap.Logger // optional; when set, logs stage events
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a logger for stage events (documents written, catalog
// generated, run summaries).
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New creates a pipeline over cfg.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Summary reports per-family record counts for one extraction.
type Summary struct {
	Methods                int `json:"methods"`
	Properties             int `json:"properties"`
	ErrorCodes             int `json:"error_codes"`
	Records                int `json:"records"`
	CodeTables             int `json:"code_tables"`
	DataTypeSections       int `json:"data_types_sections"`
	DeliverySections       int `json:"delivery_sections"`
	SpecialNotesParagraphs int `json:"special_notes_paragraphs"`
	ChangeHistoryEntries   int `json:"change_history_entries"`
}

// Summarize counts the records of one extraction.
func Summarize(ex *models.Extraction) Summary {
	return Summary{
		Methods:                len(ex.Methods),
		Properties:             len(ex.Properties),
		ErrorCodes:             len(ex.ErrorCodes),
		Records:                len(ex.Records),
		CodeTables:             len(ex.CodeTables),
		DataTypeSections:       len(ex.DataTypes),
		DeliverySections:       len(ex.Delivery),
		SpecialNotesParagraphs: len(ex.Notes),
		ChangeHistoryEntries:   len(ex.History),
	}
}

// Result is the outcome of one full pipeline run.
type Result struct {
	RunID      string
	Summary    Summary
	Extraction *models.Extraction
}

// Extract parses both source documents into the typed extraction. It
// reads the configured files but writes nothing.
func (p *Pipeline) Extract() (*models.Extraction, error) {
	if p.logger != nil {
		p.logger.Debug("pipeline parsing document", zap.String("path", p.cfg.Sources.Document))
	}
	doc, err := markup.ParseFile(p.cfg.Sources.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	defs, err := methods.Segment(doc.Lines())
	if err != nil {
		return nil, fmt.Errorf("failed to segment methods: %w", err)
	}

	if p.logger != nil {
		p.logger.Debug("pipeline parsing workbook", zap.String("path", p.cfg.Sources.Workbook))
	}
	wb, err := sheet.Load(p.cfg.Sources.Workbook)
	if err != nil {
		return nil, fmt.Errorf("failed to load workbook: %w", err)
	}

	return &models.Extraction{
		Methods:    methods.Group(defs),
		Properties: parse.ParseProperties(doc),
		ErrorCodes: parse.ParseErrorCodes(doc),
		Events:     parse.ParseEventTables(doc),
		Records:    parse.ParseRecordFormats(wb.Sheet(sheetRecordFormats)),
		CodeTables: parse.ParseGenericTables(wb.Sheet(sheetCodeTables)),
		DataTypes:  parse.ParseDataTypeList(wb.Sheet(sheetDataTypes)),
		Delivery:   parse.ParseDeliverySchedule(wb.Sheet(sheetDelivery)),
		Notes:      parse.ParseSpecialNotes(wb.Sheet(sheetNotes)),
		History:    parse.ParseChangeHistory(wb.Sheet(sheetHistory)),
		Version:    parse.ParseVersionInfo(wb.Sheet(sheetCover)),
	}, nil
}

// Render writes the eleven Markdown documents under the specs dir. Each
// document is fully built in memory before its file is touched.
func (p *Pipeline) Render(ex *models.Extraction) error {
	if err := os.MkdirAll(p.cfg.Output.SpecsDir, 0755); err != nil {
		return fmt.Errorf("failed to create specs directory: %w", err)
	}
	docs := []struct {
		name  string
		build func(io.Writer) error
	}{
		{"methods.md", func(w io.Writer) error { return render.MethodReference(w, ex.Methods) }},
		{"properties.md", func(w io.Writer) error { return render.Properties(w, ex.Properties) }},
		{ErrorTableName, func(w io.Writer) error { return render.ErrorCodes(w, ex.ErrorCodes) }},
		{"events.md", func(w io.Writer) error { return render.EventCallbacks(w, ex.Events) }},
		{"records.md", func(w io.Writer) error { return render.RecordFormats(w, ex.Records) }},
		{"code_tables.md", func(w io.Writer) error { return render.CodeTables(w, ex.CodeTables, "JV-Data Code Tables") }},
		{"data_types.md", func(w io.Writer) error { return render.DataTypeList(w, ex.DataTypes) }},
		{"delivery_schedule.md", func(w io.Writer) error { return render.DeliverySchedule(w, ex.Delivery) }},
		{"special_notes.md", func(w io.Writer) error { return render.SpecialNotes(w, ex.Notes) }},
		{"change_history.md", func(w io.Writer) error { return render.ChangeHistory(w, ex.History) }},
		{"version.md", func(w io.Writer) error { return render.VersionInfo(w, ex.Version) }},
	}
	for _, doc := range docs {
		if err := p.writeDocument(doc.name, doc.build); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) writeDocument(name string, build func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := build(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	path := filepath.Join(p.cfg.Output.SpecsDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if p.logger != nil {
		p.logger.Debug("pipeline document written", zap.String("path", path))
	}
	return nil
}

// Catalog reads the rendered error-code table, consolidates it, and
// writes the generated lookup source. When rewrite is true the table is
// also rewritten from the normalized records.
func (p *Pipeline) Catalog(rewrite bool) error {
	rules, err := catalog.DefaultRules()
	if err != nil {
		return err
	}
	tablePath := filepath.Join(p.cfg.Output.SpecsDir, ErrorTableName)
	records, err := catalog.ReadRecordsFile(tablePath, rules)
	if err != nil {
		return err
	}
	entries, err := catalog.Consolidate(records, rules)
	if err != nil {
		return fmt.Errorf("failed to consolidate error records: %w", err)
	}

	var src bytes.Buffer
	if err := catalog.WriteSource(&src, entries); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.cfg.Output.CatalogPath), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}
	if err := os.WriteFile(p.cfg.Output.CatalogPath, src.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write catalog source: %w", err)
	}
	if p.logger != nil {
		p.logger.Info("pipeline catalog generated",
			zap.String("path", p.cfg.Output.CatalogPath),
			zap.Int("entries", len(entries)))
	}

	if !rewrite {
		return nil
	}
	var table bytes.Buffer
	if err := catalog.WriteTable(&table, records); err != nil {
		return err
	}
	if err := os.WriteFile(tablePath, table.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to rewrite error table: %w", err)
	}
	if p.logger != nil {
		p.logger.Debug("pipeline error table rewritten", zap.String("path", tablePath))
	}
	return nil
}

// Run executes the full pipeline: extract, render, catalog with table
// rewrite. Identical inputs produce identical artifacts.
func (p *Pipeline) Run() (*Result, error) {
	runID := uuid.New().String()
	start := time.Now()
	if p.logger != nil {
		p.logger.Info("pipeline run starting",
			zap.String("run_id", runID),
			zap.String("document", p.cfg.Sources.Document),
			zap.String("workbook", p.cfg.Sources.Workbook))
	}
	ex, err := p.Extract()
	if err != nil {
		return nil, err
	}
	if err := p.Render(ex); err != nil {
		return nil, err
	}
	if err := p.Catalog(true); err != nil {
		return nil, err
	}
	summary := Summarize(ex)
	if p.logger != nil {
		p.logger.Info("pipeline run complete",
			zap.String("run_id", runID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("methods", summary.Methods),
			zap.Int("properties", summary.Properties),
			zap.Int("error_codes", summary.ErrorCodes),
			zap.Int("records", summary.Records),
			zap.Int("code_tables", summary.CodeTables),
			zap.Int("data_types_sections", summary.DataTypeSections),
			zap.Int("delivery_sections", summary.DeliverySections),
			zap.Int("special_notes_paragraphs", summary.SpecialNotesParagraphs),
			zap.Int("change_history_entries", summary.ChangeHistoryEntries))
	}
	return &Result{RunID: runID, Summary: summary, Extraction: ex}, nil
}
