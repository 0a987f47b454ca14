package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemorySessions() *memorySessions {
	return &memorySessions{tokens: map[string]string{}}
}

func (m *memorySessions) Save(_ context.Context, tokenID, userID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[tokenID] = userID
	return nil
}

func (m *memorySessions) Delete(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tokens[tokenID]
	delete(m.tokens, tokenID)
	return ok, nil
}

func (m *memorySessions) DeleteAllForUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, owner := range m.tokens {
		if owner == userID {
			delete(m.tokens, id)
		}
	}
	return nil
}

type usersByID map[string]*user.User

func (u usersByID) FindByID(_ context.Context, id string) (*user.User, error) {
	if found, ok := u[id]; ok {
		return found, nil
	}
	return nil, errors.New("não encontrado")
}

func TestSessionService_IssueAndRefreshRotates(t *testing.T) {
	u := testUser()
	store := newMemorySessions()
	svc := NewSessionService(newTestJWT(t), store, usersByID{u.ID: u})
	ctx := context.Background()

	first, err := svc.Issue(ctx, u, "store-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", first.TokenType)
	assert.Equal(t, int64(3600), first.ExpiresIn)
	assert.Len(t, store.tokens, 1)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Len(t, store.tokens, 1)

	// o token antigo foi revogado na rotação
	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_RefreshSuspendedUser(t *testing.T) {
	u := testUser()
	store := newMemorySessions()
	svc := NewSessionService(newTestJWT(t), store, usersByID{u.ID: u})
	ctx := context.Background()

	tokens, err := svc.Issue(ctx, u, "")
	require.NoError(t, err)

	u.Suspend()
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrUserSuspended)
	assert.Empty(t, store.tokens)

	_, err = svc.Issue(ctx, u, "")
	assert.ErrorIs(t, err, ErrUserSuspended)
}

func TestSessionService_Revoke(t *testing.T) {
	u := testUser()
	store := newMemorySessions()
	svc := NewSessionService(newTestJWT(t), store, usersByID{u.ID: u})
	ctx := context.Background()

	tokens, err := svc.Issue(ctx, u, "")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, tokens.RefreshToken))
	assert.Empty(t, store.tokens)

	assert.ErrorIs(t, svc.Revoke(ctx, tokens.AccessToken), ErrWrongTokenType)
	assert.ErrorIs(t, svc.Revoke(ctx, "lixo"), ErrInvalidToken)
}

func TestSessionService_RevokeAll(t *testing.T) {
	u := testUser()
	store := newMemorySessions()
	svc := NewSessionService(newTestJWT(t), store, usersByID{u.ID: u})
	ctx := context.Background()

	_, err := svc.Issue(ctx, u, "")
	require.NoError(t, err)
	_, err = svc.Issue(ctx, u, "")
	require.NoError(t, err)
	assert.Len(t, store.tokens, 2)

	require.NoError(t, svc.RevokeAll(ctx, u.ID))
	assert.Empty(t, store.tokens)
}

func TestSessionService_ConcurrentRefreshRotatesOnce(t *testing.T) {
	u := testUser()
	store := newMemorySessions()
	svc := NewSessionService(newTestJWT(t), store, usersByID{u.ID: u})
	ctx := context.Background()

	tokens, err := svc.Issue(ctx, u, "")
	require.NoError(t, err)

	const callers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		rotated  int
		rejected int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Refresh(ctx, tokens.RefreshToken)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				rotated++
			} else if errors.Is(err, ErrSessionNotFound) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, rotated)
	assert.Equal(t, callers-1, rejected)
	assert.Len(t, store.tokens, 1)
}
