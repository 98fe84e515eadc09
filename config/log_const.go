package config

// Color constants for logger prefixes
const (
	ColorBlue    = "\033[34m"
	ColorGreen   = "\033[32m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)
