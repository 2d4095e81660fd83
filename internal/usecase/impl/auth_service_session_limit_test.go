package impl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	"storeradar/internal/errors"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockingTxManager releases the row locks taken inside a transaction only when it ends.
type lockingTxManager struct {
	mu      sync.Mutex
	factory repository.RepositoryFactory
	unlocks map[context.Context][]func()
}

func (tm *lockingTxManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	tm.unlocks[ctx] = nil
	tm.mu.Unlock()

	defer func() {
		tm.mu.Lock()
		unlocks := tm.unlocks[ctx]
		delete(tm.unlocks, ctx)
		tm.mu.Unlock()

		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}()

	return fn(tm.factory)
}

func (tm *lockingTxManager) onCommit(ctx context.Context, unlock func()) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if _, ok := tm.unlocks[ctx]; !ok {
		return errors.New("no transaction bound to context")
	}
	tm.unlocks[ctx] = append(tm.unlocks[ctx], unlock)

	return nil
}

type sessionLimitRepoFactory struct {
	repository.RepositoryFactory

	userRepo    repository.UserRepository
	refreshRepo repository.RefreshTokenRepository
}

func (f *sessionLimitRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }

func (f *sessionLimitRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.refreshRepo
}

type sessionLimitUserRepo struct {
	repository.UserRepository

	user      *entity.User
	rowLock   sync.Mutex
	lockCalls atomic.Int64
	txManager *lockingTxManager
}

func (r *sessionLimitUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.user.Username != username {
		return nil, repository.ErrUserNotFound
	}
	copied := *r.user

	return &copied, nil
}

func (r *sessionLimitUserRepo) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	if r.user.ID != id {
		return repository.ErrUserNotFound
	}

	r.rowLock.Lock()
	if err := r.txManager.onCommit(ctx, r.rowLock.Unlock); err != nil {
		r.rowLock.Unlock()

		return err
	}
	r.lockCalls.Add(1)

	return nil
}

func (r *sessionLimitUserRepo) UpdateLastLogin(context.Context, uuid.UUID, time.Time) error {
	return nil
}

type sessionLimitRefreshRepo struct {
	repository.RefreshTokenRepository

	mu     sync.Mutex
	active map[uuid.UUID]int
}

func (r *sessionLimitRefreshRepo) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active[token.UserID]++

	return nil
}

func (r *sessionLimitRefreshRepo) CountActiveSessionsByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.active[userID], nil
}

func (r *sessionLimitRefreshRepo) activeSessions(userID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.active[userID]
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed-" + password, nil }

func (plainHasher) Check(password, hash string) bool { return hash == "hashed-"+password }

type sequenceTokenService struct {
	service.TokenService

	seq atomic.Int64
}

func (s *sequenceTokenService) GenerateTokens(uuid.UUID) (string, string, error) {
	n := s.seq.Add(1)

	return fmt.Sprintf("access-%d", n), fmt.Sprintf("refresh-%d", n), nil
}

func (s *sequenceTokenService) HashToken(token string) string { return "hash-" + token }

func (s *sequenceTokenService) GetRefreshTokenDuration() time.Duration { return time.Hour }

type sessionLimitKey struct{}

func newSessionLimitAuthService(t *testing.T, maxActiveSessions int) (usecase.AuthUsecase, *sessionLimitUserRepo, *sessionLimitRefreshRepo) {
	t.Helper()

	txManager := &lockingTxManager{unlocks: make(map[context.Context][]func())}
	userRepo := &sessionLimitUserRepo{
		user:      &entity.User{ID: uuid.New(), Username: "surveyor", PasswordHash: "hashed-secret"},
		txManager: txManager,
	}
	refreshRepo := &sessionLimitRefreshRepo{active: make(map[uuid.UUID]int)}
	txManager.factory = &sessionLimitRepoFactory{userRepo: userRepo, refreshRepo: refreshRepo}

	uc := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshRepo,
		Hasher:           plainHasher{},
		TokenService:     &sequenceTokenService{},
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return uc, userRepo, refreshRepo
}

func TestAuthService_Login_EnforcesSessionLimit(t *testing.T) {
	uc, userRepo, refreshRepo := newSessionLimitAuthService(t, 1)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "surveyor", Password: "secret"}

	first, err := uc.Login(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := uc.Login(ctx, input)
	require.Error(t, err)
	assert.Nil(t, second)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
	assert.Equal(t, int64(2), userRepo.lockCalls.Load())
	assert.Equal(t, 1, refreshRepo.activeSessions(first.User.ID))
}

func TestAuthService_Login_EnforcesSessionLimit_Concurrent(t *testing.T) {
	const (
		maxActiveSessions = 3
		concurrentLogins  = 12
	)

	uc, userRepo, refreshRepo := newSessionLimitAuthService(t, maxActiveSessions)
	input := &usecase.LoginInput{Username: "surveyor", Password: "secret"}

	var wg sync.WaitGroup
	var succeeded, limited, failed atomic.Int64

	for i := range concurrentLogins {
		wg.Go(func() {
			// Distinct contexts keep the fake transactions apart.
			ctx := context.WithValue(context.Background(), sessionLimitKey{}, i)

			_, err := uc.Login(ctx, input)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrSessionLimitExceeded):
				limited.Add(1)
			default:
				failed.Add(1)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int64(maxActiveSessions), succeeded.Load())
	assert.Equal(t, int64(concurrentLogins-maxActiveSessions), limited.Load())
	assert.Zero(t, failed.Load())
	assert.Equal(t, int64(concurrentLogins), userRepo.lockCalls.Load())
	assert.Equal(t, maxActiveSessions, refreshRepo.activeSessions(userRepo.user.ID))
}
