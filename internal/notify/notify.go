// Package notify is the notification sink the sync engine reports through.
// The UI renders these as dismissible toasts; the default sink writes to
// the structured log.
package notify

import "go.uber.org/zap"

// Notifier receives the outcome of every mutation.
type Notifier interface {
	Success(title, message string)
	Failure(title, message string)
}

// Log is a Notifier backed by the application logger.
type Log struct {
	log *zap.SugaredLogger
}

// NewLog constructs a log-backed notifier.
func NewLog(log *zap.SugaredLogger) *Log {
	return &Log{log: log.Named("notify")}
}

// Success logs a confirmatory notification.
func (l *Log) Success(title, message string) {
	l.log.Infow("notification", "kind", "success", "title", title, "message", message)
}

// Failure logs a failure notification.
func (l *Log) Failure(title, message string) {
	l.log.Warnw("notification", "kind", "failure", "title", title, "message", message)
}
