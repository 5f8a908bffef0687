package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector/internal/domain/entity"
	repo "github.com/oksasatya/devconnector/internal/domain/repository"
	"github.com/oksasatya/devconnector/pkg/helpers"
	"github.com/oksasatya/devconnector/pkg/validation"
)

var (
	ErrUserExists = errors.New("user already exists")
	ErrStorage    = errors.New("storage failure")
	ErrSigning    = errors.New("signing failure")
	ErrHashing    = errors.New("password hashing failed")
)

// ValidationError carries every violated input rule, in the order checked.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ResponseMode selects what a successful registration returns.
type ResponseMode string

const (
	ModeToken ResponseMode = "token"
	ModeUser  ResponseMode = "user"
)

// TokenSigner issues the session token returned in token mode.
type TokenSigner interface {
	Sign(userID string) (string, time.Time, error)
}

// UserIndexer and WelcomeNotifier run after a user is stored. Their errors are
// logged and never change the registration outcome.
type UserIndexer interface {
	IndexUser(ctx context.Context, u *entity.User) error
}

type WelcomeNotifier interface {
	NotifyWelcome(ctx context.Context, u *entity.User) error
}

type Options struct {
	Mode         ResponseMode
	BcryptCost   int
	StoreTimeout time.Duration
	Avatar       helpers.AvatarOptions
}

type Service struct {
	Repo     repo.UserRepository
	Signer   TokenSigner
	Indexer  UserIndexer
	Notifier WelcomeNotifier
	Logger   *logrus.Logger
	Opts     Options

	hash     func(plain string, cost int) (string, error)
	validate *validator.Validate
}

func NewService(repo repo.UserRepository, signer TokenSigner, indexer UserIndexer, notifier WelcomeNotifier, logger *logrus.Logger, opts Options) *Service {
	if opts.Mode == "" {
		opts.Mode = ModeToken
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 5 * time.Second
	}
	if opts.Avatar == (helpers.AvatarOptions{}) {
		opts.Avatar = helpers.DefaultAvatarOptions()
	}
	if logger == nil {
		logger = helpers.DiscardLogger()
	}
	return &Service{
		Repo:     repo,
		Signer:   signer,
		Indexer:  indexer,
		Notifier: notifier,
		Logger:   logger,
		Opts:     opts,
		hash:     helpers.HashPassword,
		validate: validation.New(),
	}
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"pwd"`
}

var registerMessages = validation.Messages{
	"name.required": "Name is required.",
	"email.email":   "Must use a valid email.",
	"password.pwd":  fmt.Sprintf("Password must be at least %d characters long.", validation.MinPasswordLength),
}

// RegisterResult holds exactly one of Token or User, depending on the mode.
type RegisterResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Register validates in, rejects known emails, hashes the password and stores
// the user, then completes according to Opts.Mode. A duplicate email stops the
// workflow before any hashing or write. Follow-ups run only once the result
// is ready.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	fields, err := validation.Struct(s.validate, in, registerMessages)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	log := s.Logger.WithField("email", in.Email)

	existing, err := s.findByEmail(ctx, in.Email)
	if err != nil {
		log.WithError(err).Error("lookup user by email failed")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	avatar := helpers.GravatarURL(in.Email, s.Opts.Avatar)

	hash, err := s.hash(in.Password, s.Opts.BcryptCost)
	if err != nil {
		log.WithError(err).Error("hash password failed")
		return nil, fmt.Errorf("%w: %w", ErrHashing, err)
	}

	u := &entity.User{
		Name:      in.Name,
		Email:     in.Email,
		AvatarURL: avatar,
		Password:  hash,
	}
	if err := s.create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			// Lost a race with a concurrent registration; the unique index decided.
			return nil, ErrUserExists
		}
		log.WithError(err).Error("create user failed")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	log.WithField("user_id", u.ID).Info("user registered")

	res, err := s.complete(u)
	if err != nil {
		log.WithError(err).WithField("user_id", u.ID).Error("sign token failed")
		return nil, err
	}
	s.afterCreate(ctx, u)
	return res, nil
}

// complete builds the success result for the configured mode.
func (s *Service) complete(u *entity.User) (*RegisterResult, error) {
	if s.Opts.Mode == ModeUser {
		out := *u
		out.Password = ""
		return &RegisterResult{User: &out}, nil
	}
	if s.Signer == nil {
		return nil, fmt.Errorf("%w: no signer configured", ErrSigning)
	}
	token, exp, err := s.Signer.Sign(u.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	return &RegisterResult{Token: token, ExpiresAt: exp}, nil
}

func (s *Service) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	c, cancel := context.WithTimeout(ctx, s.Opts.StoreTimeout)
	defer cancel()
	u, err := s.Repo.GetByEmail(c, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

// UserByID reads a stored user back without its password hash.
func (s *Service) UserByID(ctx context.Context, id string) (*entity.User, error) {
	c, cancel := context.WithTimeout(ctx, s.Opts.StoreTimeout)
	defer cancel()
	u, err := s.Repo.GetByID(c, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	u.Password = ""
	return u, nil
}

func (s *Service) create(ctx context.Context, u *entity.User) error {
	c, cancel := context.WithTimeout(ctx, s.Opts.StoreTimeout)
	defer cancel()
	return s.Repo.Create(c, u)
}

func (s *Service) afterCreate(ctx context.Context, u *entity.User) {
	if s.Indexer != nil {
		if err := s.Indexer.IndexUser(ctx, u); err != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("index user failed")
		}
	}
	if s.Notifier != nil {
		if err := s.Notifier.NotifyWelcome(ctx, u); err != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
		}
	}
}
