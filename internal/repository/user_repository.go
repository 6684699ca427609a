package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/persistence"
	"github.com/yatraflow/yatraflow/pkg/util"
)

// UserRepository owns registered accounts and the persisted session mirror.
// Emails are unique case-insensitively.
type UserRepository interface {
	ListUsers() []domain.User
	GetByID(id string) (*domain.User, bool)
	FindByEmail(email string) (*domain.User, bool)
	CreateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, id string)
	SaveSession(ctx context.Context, session domain.Session)
	ClearSession(ctx context.Context)
	CurrentSession() domain.Session
}

type userRepository struct {
	mu      sync.RWMutex
	users   []domain.User
	session domain.Session
	store   persistence.Store
	logger  *zap.Logger
}

// NewUserRepository builds the repository, restoring persisted users and
// session state.
func NewUserRepository(ctx context.Context, store persistence.Store, logger *zap.Logger) UserRepository {
	repo := &userRepository{
		session: domain.LoggedOut(),
		store:   store,
		logger:  logger,
	}

	if raw, err := store.Get(ctx, persistence.KeyUsers); err == nil {
		if err := json.Unmarshal(raw, &repo.users); err != nil {
			logger.Warn("discarding corrupt users snapshot", zap.Error(err))
			repo.users = nil
		}
	} else if !errors.Is(err, persistence.ErrKeyNotFound) {
		logger.Warn("unable to read users snapshot", zap.Error(err))
	}

	if raw, err := store.Get(ctx, persistence.KeySession); err == nil {
		var session domain.Session
		if err := json.Unmarshal(raw, &session); err != nil {
			logger.Warn("discarding corrupt session snapshot", zap.Error(err))
		} else {
			repo.session = session
		}
	} else if !errors.Is(err, persistence.ErrKeyNotFound) {
		logger.Warn("unable to read session snapshot", zap.Error(err))
	}

	return repo
}

func (r *userRepository) ListUsers() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.User(nil), r.users...)
}

func (r *userRepository) GetByID(id string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, true
		}
	}
	return nil, false
}

func (r *userRepository) FindByEmail(email string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, true
		}
	}
	return nil, false
}

func (r *userRepository) CreateUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			r.mu.Unlock()
			return util.NewDuplicateEmail(user.Email)
		}
	}
	r.users = append(r.users, user)
	r.mu.Unlock()

	r.persistUsers(ctx)
	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) {
	r.mu.Lock()
	found := false
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			found = true
			break
		}
	}
	r.mu.Unlock()

	if found {
		r.persistUsers(ctx)
	}
}

func (r *userRepository) SaveSession(ctx context.Context, session domain.Session) {
	r.mu.Lock()
	r.session = session
	r.mu.Unlock()

	raw, err := json.Marshal(session)
	if err != nil {
		r.logger.Error("marshal session", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, persistence.KeySession, raw); err != nil {
		r.logger.Error("persist session", zap.Error(err))
	}
}

// ClearSession clears the persisted session only; the user list is untouched.
func (r *userRepository) ClearSession(ctx context.Context) {
	r.mu.Lock()
	r.session = domain.LoggedOut()
	r.mu.Unlock()

	if err := r.store.Delete(ctx, persistence.KeySession); err != nil {
		r.logger.Error("clear session", zap.Error(err))
	}
}

func (r *userRepository) CurrentSession() domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session
}

func (r *userRepository) persistUsers(ctx context.Context) {
	r.mu.RLock()
	raw, err := json.Marshal(r.users)
	r.mu.RUnlock()
	if err != nil {
		r.logger.Error("marshal users snapshot", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, persistence.KeyUsers, raw); err != nil {
		r.logger.Error("persist users snapshot", zap.Error(err))
	}
}
