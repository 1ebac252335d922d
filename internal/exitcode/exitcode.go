package exitcode

// Partial read or write failures still exit Success; only a run that finds
// no records at all stops with NoRecords.
const (
	Success     = 0
	UsageError  = 1
	NoRecords   = 2
	DBConnError = 3
	CopyError   = 4
	LoadError   = 5
)
