package logging

const (
	LogFieldRequestMethod  = "request-method"
	LogFieldResponseStatus = "response-status"
	LogFieldURLPath        = "url-path"
	LogFieldUserAgent      = "user-agent"
	LogFieldEventDuration  = "event-duration"
	LogFieldLogger         = "logger"
	LogFieldStackTrace     = "stack-trace"
)
