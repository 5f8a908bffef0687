package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// Disposition tells the consumer what to do with a delivery.
type Disposition int

const (
	Ack Disposition = iota
	Requeue
	Drop
)

var errNoRecipient = errors.New("email job has no recipient")

// Worker turns queued EmailJob payloads into sent mail.
type Worker struct {
	Sender      Sender
	Logger      *logrus.Logger
	SendTimeout time.Duration
}

// Handle processes one raw delivery body. Malformed or unrenderable jobs are
// dropped; delivery failures are requeued.
func (w *Worker) Handle(ctx context.Context, body []byte) Disposition {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.Logger.WithError(err).Warn("bad email job")
		return Drop
	}
	if job.To == "" {
		w.Logger.WithError(errNoRecipient).Warn("bad email job")
		return Drop
	}

	subject, text, html, err := job.Resolve()
	if err != nil {
		w.Logger.WithError(err).WithField("template", job.Template).Warn("render failed")
		return Drop
	}

	timeout := w.SendTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := w.Sender.Send(c, job.To, subject, text, html); err != nil {
		w.Logger.WithError(err).WithField("template", job.Template).Warn("send failed")
		return Requeue
	}
	w.Logger.WithField("template", job.Template).Debug("email sent")
	return Ack
}
