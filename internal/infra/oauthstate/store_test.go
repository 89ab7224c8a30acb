package oauthstate

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndConsume(t *testing.T) {
	store := newMemoryStore(time.Minute)
	ctx := context.Background()

	state, err := store.Issue(ctx)
	require.NoError(t, err)
	assert.Len(t, state, 43)

	assert.True(t, store.Consume(ctx, state))
	assert.False(t, store.Consume(ctx, state), "state must be single use")
}

func TestConsume_Unknown(t *testing.T) {
	store := newMemoryStore(time.Minute)

	assert.False(t, store.Consume(context.Background(), "forged"))
	assert.False(t, store.Consume(context.Background(), ""))
}

func TestConsume_Expired(t *testing.T) {
	store := newMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	state, err := store.Issue(ctx)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	assert.False(t, store.Consume(ctx, state))
}

func TestConsume_OnlyOneWinner(t *testing.T) {
	store := newMemoryStore(time.Minute)
	ctx := context.Background()

	state, err := store.Issue(ctx)
	require.NoError(t, err)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Consume(ctx, state) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
