// Package log provides slog-based logging that never leaks passwords.
//
// NewSecureLogger wraps a text handler with SecureHandler, which masks
// attribute values whose key names a password or secret, as well as values
// that look like credentials regardless of their key:
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("analyzing", "password", pw) // password=***REDACTED***
//
// Verbose loggers emit Debug and above; otherwise only Warn and Error.
package log
