package model

import "time"

// ConvertSummary captures metrics from a single convert run.
type ConvertSummary struct {
	RunID            string
	InputFiles       int
	FilesRead        int
	FilesFailed      int
	RecordsRead      int64
	RecordsRejected  int64
	RecordsSkipped   int64 // no claim.casenumber
	RecordsFlattened int64
	RowsByTable      map[Table]int
	OutputsWritten   int
	OutputsFailed    int
	OutputSHA256     map[Table]string // digest of each emitted CSV document
	DurationRead     time.Duration
	DurationFlatten  time.Duration
	DurationWrite    time.Duration
	DurationTotal    time.Duration
}

// LoadSummary captures metrics from a Postgres load run.
type LoadSummary struct {
	LoadBatchID   string
	RowsByTable   map[Table]int64
	RowsCopied    int64
	DurationCopy  time.Duration
	DurationTotal time.Duration
}
