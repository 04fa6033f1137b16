package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"

	// RecordSchemaVersion is the current version of the recorded event log format
	RecordSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeySessionID = "session_id"
)

// Recorder file configuration
const (
	// RecordFilePermissions is the file permission mode for event log files
	RecordFilePermissions = 0644
)

// Log message constants
const (
	LogMsgEventRecorded     = "Event recorded"
	LogMsgRecordWriteFailed = "Failed to write event record"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
