package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oksasatya/devconnector/internal/domain/entity"
	repo "github.com/oksasatya/devconnector/internal/domain/repository"
)

// memRepo is an in-memory store with a unique email index.
type memRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	seq     int
	reads   int
	writes  int

	getErr    error
	createErr error
	// lookupMiss makes GetByEmail report not-found even for stored emails,
	// simulating a concurrent insert that landed after the lookup.
	lookupMiss bool
}

func newMemRepo() *memRepo {
	return &memRepo{byEmail: map[string]*entity.User{}}
}

func (r *memRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.createErr != nil {
		return r.createErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return repo.ErrDuplicateEmail
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	stored := *u
	r.byEmail[u.Email] = &stored
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.byEmail[email]
	if !ok || r.lookupMiss {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) count(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return 1
	}
	return 0
}

func (r *memRepo) stored(email string) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byEmail[email]; ok {
		cp := *u
		return &cp
	}
	return nil
}

func (r *memRepo) ops() (reads, writes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads, r.writes
}

type stubSigner struct {
	err error
	ids []string
	mu  sync.Mutex
}

func (s *stubSigner) Sign(userID string) (string, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, userID)
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "token-for-" + userID, time.Now().Add(100 * time.Hour), nil
}

type recorder struct {
	mu    sync.Mutex
	users []*entity.User
	err   error
}

func (r *recorder) IndexUser(_ context.Context, u *entity.User) error {
	return r.record(u)
}

func (r *recorder) NotifyWelcome(_ context.Context, u *entity.User) error {
	return r.record(u)
}

func (r *recorder) record(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
	return r.err
}

func (r *recorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

var errBoom = errors.New("boom")
