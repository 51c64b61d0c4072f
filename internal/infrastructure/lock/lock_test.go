package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockAndUnlock(t *testing.T) {
	m := NewAccountLockManager()
	ctx := context.Background()

	err := m.Lock(ctx, 1)
	assert.NoError(t, err)

	assert.False(t, m.TryLock(1))

	m.Unlock(1)
	assert.True(t, m.TryLock(1))
	m.Unlock(1)
}

func TestLockIndependentAccounts(t *testing.T) {
	m := NewAccountLockManager()
	ctx := context.Background()

	assert.NoError(t, m.Lock(ctx, 1))
	assert.NoError(t, m.Lock(ctx, 2))

	m.Unlock(1)
	m.Unlock(2)
}

func TestLockContextCancelled(t *testing.T) {
	m := NewAccountLockManager()

	assert.NoError(t, m.Lock(context.Background(), 1))
	defer m.Unlock(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := m.Lock(ctx, 1)
	assert.Error(t, err)
}

func TestLockUsableAfterCancelledAcquisition(t *testing.T) {
	m := NewAccountLockManager()

	assert.NoError(t, m.Lock(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, m.Lock(ctx, 1))

	// the abandoned acquisition must not consume the slot once the
	// holder releases it
	m.Unlock(1)

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	assert.NoError(t, m.Lock(ctx2, 1))
	m.Unlock(1)
}

func TestUnlockWithoutHold(t *testing.T) {
	m := NewAccountLockManager()

	// must not panic or grant a phantom slot
	m.Unlock(1)
	assert.NoError(t, m.Lock(context.Background(), 1))
	m.Unlock(1)
	m.Unlock(1)
	assert.True(t, m.TryLock(1))
	m.Unlock(1)
}
