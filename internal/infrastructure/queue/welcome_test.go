package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/devconnector/internal/domain/entity"
	"github.com/oksasatya/devconnector/pkg/mailer"
)

type capturePublisher struct {
	got []any
	err error
}

func (p *capturePublisher) PublishJSON(_ context.Context, body any) error {
	p.got = append(p.got, body)
	return p.err
}

func TestNotifyWelcomePublishesJob(t *testing.T) {
	pub := &capturePublisher{}
	w := NewWelcomePublisher(pub, "DevConnector", true)

	u := &entity.User{ID: "u1", Name: "Ada", Email: "ada@example.com", AvatarURL: "https://a", Password: "$2a$10$hash"}
	if err := w.NotifyWelcome(context.Background(), u); err != nil {
		t.Fatalf("NotifyWelcome: %v", err)
	}
	if len(pub.got) != 1 {
		t.Fatalf("published %d messages", len(pub.got))
	}
	job, ok := pub.got[0].(mailer.EmailJob)
	if !ok {
		t.Fatalf("published %T", pub.got[0])
	}
	if job.To != "ada@example.com" || job.Template != "welcome" || job.Data["Name"] != "Ada" {
		t.Fatalf("job = %+v", job)
	}
	for k, v := range job.Data {
		if v == u.Password {
			t.Fatalf("job data %q carries the password hash", k)
		}
	}
}

func TestNotifyWelcomeDisabled(t *testing.T) {
	pub := &capturePublisher{}
	if err := NewWelcomePublisher(pub, "x", false).NotifyWelcome(context.Background(), &entity.User{}); err != nil {
		t.Fatal(err)
	}
	var nilPub *WelcomePublisher
	if err := nilPub.NotifyWelcome(context.Background(), &entity.User{}); err != nil {
		t.Fatal(err)
	}
	if len(pub.got) != 0 {
		t.Fatal("published while disabled")
	}
}

func TestNotifyWelcomePropagatesError(t *testing.T) {
	pub := &capturePublisher{err: errors.New("channel closed")}
	if err := NewWelcomePublisher(pub, "x", true).NotifyWelcome(context.Background(), &entity.User{Email: "a@b.c"}); err == nil {
		t.Fatal("expected publish error")
	}
}
