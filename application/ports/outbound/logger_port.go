package outbound

type LoggerPort interface {
	Info(msg string)
	InfoWithFields(msg string, fields map[string]any)
	Error(err error, msg string)
	ErrorWithFields(err error, msg string, fields map[string]any)
	Debug(msg string)
	DebugWithFields(msg string, fields map[string]any)
	Warn(msg string)
	WarnWithFields(msg string, fields map[string]any)
}
