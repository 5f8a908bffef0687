package queue

import (
	"context"
	"time"

	"github.com/oksasatya/devconnector/internal/domain/entity"
	"github.com/oksasatya/devconnector/pkg/mailer"
	"github.com/oksasatya/devconnector/pkg/mailer/templates"
)

// JSONPublisher is satisfied by *RabbitPublisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// WelcomePublisher enqueues a welcome email for each newly registered user.
type WelcomePublisher struct {
	Pub     JSONPublisher
	AppName string
	Enabled bool
	Timeout time.Duration
}

func NewWelcomePublisher(pub JSONPublisher, appName string, enabled bool) *WelcomePublisher {
	return &WelcomePublisher{Pub: pub, AppName: appName, Enabled: enabled, Timeout: 3 * time.Second}
}

func (w *WelcomePublisher) NotifyWelcome(ctx context.Context, u *entity.User) error {
	if w == nil || !w.Enabled || w.Pub == nil {
		return nil
	}
	job := mailer.NewWelcomeJob(templates.WelcomeData{
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		AppName:   w.AppName,
	})
	c, cancel := context.WithTimeout(ctx, w.Timeout)
	defer cancel()
	return w.Pub.PublishJSON(c, job)
}
