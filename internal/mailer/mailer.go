package mailer

import "context"

// Template identifies one of the transactional emails this service sends.
type Template string

const (
	TemplateResetPassword   Template = "reset-password"
	TemplatePasswordUpdated Template = "password-updated"
)

// Mailer delivers a rendered template to a single recipient. Implementations
// must treat the call as best-effort blocking I/O; callers decide whether a
// failure is fatal to the surrounding flow.
type Mailer interface {
	Send(ctx context.Context, to string, tmpl Template, data map[string]string) error
}
