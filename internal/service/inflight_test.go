package service_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mealmuse/backend/internal/service"
	"github.com/mealmuse/backend/internal/testhelpers"
)

// fakeLocker is an in-process GenerationLocker with the same contract as the
// Redis-backed one.
type fakeLocker struct {
	mu       sync.Mutex
	held     map[uuid.UUID]bool
	acquires int
	releases int
	err      error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[uuid.UUID]bool)}
}

func (f *fakeLocker) Acquire(ctx context.Context, userID uuid.UUID) (func(), bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, false, f.err
	}
	if f.held[userID] {
		return nil, false, nil
	}
	f.held[userID] = true
	f.acquires++

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.held, userID)
		f.releases++
	}, true, nil
}

func TestRecipeService_InFlightGuard(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userID := uuid.New()

	started := make(chan struct{})
	release := make(chan struct{})

	invoker := new(testhelpers.MockInvoker)
	invoker.On("Invoke", mock.Anything, testModelID, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]byte(`{"content":[{"type":"text","text":"Slow recipe"}]}`), nil).
		Once()
	invoker.On("Invoke", mock.Anything, testModelID, mock.Anything).
		Return([]byte(`{"content":[{"type":"text","text":"Quick recipe"}]}`), nil)

	locker := newFakeLocker()
	svc := service.NewRecipeService(db, locker, invoker, nil, testModelID)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.GenerateRecipeIdea(context.Background(), userID, []string{"eggs"})
		firstDone <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first generation never reached the model invocation")
	}

	// Second submission while the first is in flight is rejected, and the
	// rejection does not touch the held lock.
	_, err := svc.GenerateRecipeIdea(context.Background(), userID, []string{"eggs"})
	assert.ErrorIs(t, err, service.ErrGenerationInFlight)

	// Another user is unaffected by this user's lock.
	_, err = svc.GenerateRecipeIdea(context.Background(), uuid.New(), []string{"rice"})
	assert.NoError(t, err)

	close(release)
	require.NoError(t, <-firstDone)

	// Guard is released once the first generation finishes.
	_, err = svc.GenerateRecipeIdea(context.Background(), userID, []string{"flour"})
	assert.NotErrorIs(t, err, service.ErrGenerationInFlight)

	locker.mu.Lock()
	defer locker.mu.Unlock()
	assert.Empty(t, locker.held)
	assert.Equal(t, locker.acquires, locker.releases)
}

func TestRecipeService_InFlightGuardFailsOpen(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userID := uuid.New()

	invoker := new(testhelpers.MockInvoker)
	invoker.On("Invoke", mock.Anything, testModelID, mock.Anything).
		Return([]byte(`{"content":[{"type":"text","text":"Omelette recipe..."}]}`), nil).
		Once()

	locker := newFakeLocker()
	locker.err = fmt.Errorf("connection refused")
	svc := service.NewRecipeService(db, locker, invoker, nil, testModelID)

	// A broken locker degrades to unguarded generation, not an outage.
	recipe, err := svc.GenerateRecipeIdea(context.Background(), userID, []string{"eggs"})
	require.NoError(t, err)
	assert.Equal(t, "Omelette recipe...", recipe.Body)
}

func TestRedisGenerationLocker(t *testing.T) {
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		t.Skip("Skipping Redis-dependent test - REDIS_HOST not set")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, getPort()),
	})
	t.Cleanup(func() { _ = redisClient.Close() })

	locker := service.NewRedisGenerationLocker(redisClient)
	userID := uuid.New()
	ctx := context.Background()

	release, acquired, err := locker.Acquire(ctx, userID)
	require.NoError(t, err)
	require.True(t, acquired)

	_, contended, err := locker.Acquire(ctx, userID)
	require.NoError(t, err)
	assert.False(t, contended)

	release()

	release, acquired, err = locker.Acquire(ctx, userID)
	require.NoError(t, err)
	assert.True(t, acquired)
	release()
}

func getPort() string {
	if port := os.Getenv("REDIS_PORT"); port != "" {
		return port
	}
	return "6379"
}
