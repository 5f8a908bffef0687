package mailer

import (
	"fmt"

	"github.com/oksasatya/devconnector/pkg/mailer/templates"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Html is optional; Text is recommended as fallback.
// You can also use a template by specifying Template and Data.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// NewWelcomeJob builds the job queued after a successful registration.
func NewWelcomeJob(d templates.WelcomeData) EmailJob {
	return EmailJob{To: d.Email, Template: templates.Welcome, Data: d.ToMap()}
}

// EnsureRecipient fills Data["Email"] from To when the producer left it out.
func (j *EmailJob) EnsureRecipient() {
	if j.Data == nil {
		j.Data = map[string]any{}
	}
	if v, ok := j.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		j.Data["Email"] = j.To
	}
}

// Resolve renders the template, if any, into subject/text/html.
func (j *EmailJob) Resolve() (subject, text, html string, err error) {
	if j.Template == "" {
		return j.Subject, j.Text, j.HTML, nil
	}
	j.EnsureRecipient()
	return templates.Render(j.Template, j.Data)
}
