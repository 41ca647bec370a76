package domain

// Notifier sends a transactional email. Sending is best-effort with
// a bounded timeout applied by the implementation: failures must be
// downgraded to warnings by the caller and never gate a state change.
type Notifier interface {
	Send(to, subject, body string) error
}
