package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldDelimiter = "delimiter"
	FieldMode      = "mode"
	FieldPositions = "positions"
	FieldJobs      = "jobs"

	// Statistics fields.
	FieldFilesProcessed = "files_processed"
	FieldFilesErrored   = "files_errored"
	FieldLinesRead      = "lines_read"
	FieldLinesEmitted   = "lines_emitted"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
