package header

const (
	Accept      = "Accept"
	ContentType = "Content-Type"
	XRequestID  = "X-Request-ID"
)
