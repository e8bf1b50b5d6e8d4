package model

import "time"

// GenerationResult describes the finished artifact set of one pipeline run.
type GenerationResult struct {
	// DraftMarkdown is the unedited first-pass text.
	DraftMarkdown string

	// FinalMarkdown is the text that was rendered. Equals DraftMarkdown
	// when the editorial pass failed or returned nothing.
	FinalMarkdown string

	// References is the newline-joined blob of extracted upload text.
	References string

	// OutputPath is the absolute location of the rendered PDF.
	OutputPath string

	// Filename is the base name of the rendered PDF.
	Filename string

	// Size is the rendered PDF size in bytes.
	Size int64
}

// EbookRecord is one archived generation. Rows are append-only; the
// pipeline never updates or deletes them.
type EbookRecord struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	Personality   string    `gorm:"size:100"`
	InputText     string    `gorm:"type:longtext"`
	ReferenceText string    `gorm:"type:longtext"`
	Markdown      string    `gorm:"type:longtext"`
	PDFFilename   string    `gorm:"size:255"`
	PDFSize       int64
	PDFContent    []byte `gorm:"type:longblob"`
}

// TableName keeps the archive table name stable across gorm defaults.
func (EbookRecord) TableName() string { return "ebooks" }
