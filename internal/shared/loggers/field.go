package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldBatchID     = "batch_id"
	FieldPartitionId = "partition_id"
	FieldEventID     = "event_id"
	FieldMachineID   = "machine_id"
	FieldFactoryID   = "factory_id"
)
