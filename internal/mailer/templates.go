package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const resetPasswordHTML = `
<p>Hi {{.Firstname}},</p>
<p>We received a request to reset your password, please click the button below to reset it:</p>
<p><a href="{{.BaseURL}}/choose-new-password/{{.Token}}">Reset your password</a></p>
<p>Thanks,<br>{{.AppName}}</p>`

const passwordUpdatedHTML = `
<p>Hi {{.Firstname}},</p>
<p>You have successfully reset your password, you'll need to login again with your new password.</p>
<p><a href="{{.BaseURL}}/login">Login to your account</a></p>
<p>Thanks,<br>{{.AppName}}</p>`

var templates = map[Template]*template.Template{
	TemplateResetPassword:   template.Must(template.New(string(TemplateResetPassword)).Parse(resetPasswordHTML)),
	TemplatePasswordUpdated: template.Must(template.New(string(TemplatePasswordUpdated)).Parse(passwordUpdatedHTML)),
}

var subjects = map[Template]string{
	TemplateResetPassword:   "Reset your password",
	TemplatePasswordUpdated: "Your password has been updated",
}

// Render produces the subject and HTML body for a template.
func Render(tmpl Template, data map[string]string) (subject string, body string, err error) {
	t, ok := templates[tmpl]
	if !ok {
		return "", "", fmt.Errorf("unknown mail template %q", tmpl)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render mail template %q: %w", tmpl, err)
	}
	return subjects[tmpl], buf.String(), nil
}
