package i

// Logger is the levelled logger shared by the services.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
