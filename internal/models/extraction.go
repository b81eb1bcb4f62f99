package models

// Extraction bundles every record family produced by one pipeline run over
// the two source documents.
type Extraction struct {
	Methods    []MethodGroup
	Properties []PropertyEntry
	ErrorCodes []ErrorCodeEntry
	Events     EventTables
	Records    []RecordFormat
	CodeTables []GenericTable
	DataTypes  []SheetSection
	Delivery   []SheetSection
	Notes      []string
	History    []ChangeHistoryEntry
	Version    VersionInfo
}
