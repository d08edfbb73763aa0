package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/repositories/identity"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/common"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/logging"
)

// SessionService establishes the identity the uploader acts as.
//
// Contract:
//   - Start: sign in with the configured token, else resume the persisted
//     identity for the app id, else create and persist an anonymous one.
//   - Ready / Done: whether (and when) an identity is established.
//   - SignInWithToken: switch to a token identity at any time.
type SessionService interface {
	Start(ctx context.Context) error
	Ready() bool
	Identity() (models.Identity, bool)
	Done() <-chan struct{}
	SignInWithToken(ctx context.Context, token string) error
}

// SessionOptions configure NewSessionService.
type SessionOptions struct {
	AppID  string
	Token  string
	Secret []byte
}

type sessionService struct {
	repo identity.Repository
	opts SessionOptions
	log  logging.Logger

	now   func() time.Time
	newID func() string

	mu        sync.RWMutex
	current   *models.Identity
	ready     chan struct{}
	readyOnce sync.Once
}

func NewSessionService(repo identity.Repository, opts SessionOptions, log logging.Logger) SessionService {
	if log == nil {
		log = logging.Discard()
	}
	return &sessionService{
		repo:  repo,
		opts:  opts,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
		ready: make(chan struct{}),
	}
}

func (s *sessionService) Start(ctx context.Context) error {
	if s.opts.Token != "" {
		return s.SignInWithToken(ctx, s.opts.Token)
	}

	cur, err := s.repo.Get(ctx, s.opts.AppID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if cur != nil {
		s.log.Info(ctx, "session resumed", "user_id", cur.UserID, "provider", cur.Provider)
		s.set(cur)
		return nil
	}

	anon := &models.Identity{
		UserID:    s.newID(),
		Provider:  common.AnonymousProvider,
		Anonymous: true,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, s.opts.AppID, anon); err != nil {
		return fmt.Errorf("save anonymous session: %w", err)
	}
	s.log.Info(ctx, "anonymous session created", "user_id", anon.UserID)
	s.set(anon)
	return nil
}

func (s *sessionService) SignInWithToken(ctx context.Context, token string) error {
	sub, err := subjectFromToken(token, s.opts.Secret, s.now())
	if err != nil {
		s.log.Warn(ctx, "token sign-in failed", "error", err)
		return err
	}

	id := &models.Identity{
		UserID:    sub,
		Provider:  common.CustomTokenProvider,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, s.opts.AppID, id); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.log.Info(ctx, "signed in with token", "user_id", sub)
	s.set(id)
	return nil
}

func (s *sessionService) set(id *models.Identity) {
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })
}

func (s *sessionService) Ready() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

func (s *sessionService) Done() <-chan struct{} {
	return s.ready
}

func (s *sessionService) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Identity{}, false
	}
	return *s.current, true
}
