package constants

// WebSocket event types
const (
	EventError              = "error"
	EventPing               = "ping"
	EventPong               = "pong"
	EventMessageNew         = "message.new"
	EventAppointmentUpdated = "appointment.updated"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
