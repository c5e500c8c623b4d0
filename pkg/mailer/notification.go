package mailer

import (
	"bytes"
	"text/template"
	"time"
)

// UserNotice is the data behind an operator notification about a user change.
type UserNotice struct {
	AppName    string
	Event      string
	UserID     string
	UserName   string
	OccurredAt time.Time
}

var noticeTmpl = template.Must(template.New("notice").Parse(
	`{{.AppName}}: {{.Event}}

User ID:   {{.UserID}}
User name: {{.UserName}}
At:        {{.OccurredAt.Format "2006-01-02 15:04:05 MST"}}
`))

// RenderNotice returns the subject and plain-text body for n.
func RenderNotice(n UserNotice) (string, string, error) {
	var buf bytes.Buffer
	if err := noticeTmpl.Execute(&buf, n); err != nil {
		return "", "", err
	}
	subject := "[" + n.AppName + "] " + n.Event + ": " + n.UserName
	return subject, buf.String(), nil
}
