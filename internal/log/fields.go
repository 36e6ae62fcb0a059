package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldClientIP    = "client_ip"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldBackend     = "backend"
	FieldDate        = "date"
	FieldSource      = "source"
	FieldItem        = "item"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldRowCount    = "row_count"
)

// Components defines standard component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentLedger   = "ledger"
	ComponentRecorder = "recorder"
	ComponentAMQP     = "amqp"
	ComponentConfig   = "config"
)

// Operations defines standard operation names.
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpRecord   = "record"
	OpRender   = "render"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
