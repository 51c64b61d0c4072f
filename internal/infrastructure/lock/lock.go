package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const lockTimeout = 5 * time.Second

// AccountLockManager serializes per-account mutations (coin debit, best-score
// update, play insert) within this process, on top of the database row lock.
//
// Each account maps to a one-slot channel semaphore. A caller that gives up
// waiting simply stops selecting on the channel; the slot stays with whoever
// holds it and the next Unlock frees it.
type AccountLockManager struct {
	locks  sync.Map // map[int64]chan struct{}
	logger *zap.Logger
}

func NewAccountLockManager() *AccountLockManager {
	logger, _ := zap.NewProduction()
	return &AccountLockManager{
		logger: logger,
	}
}

// Lock acquires a lock for the given accountID with timeout
func (m *AccountLockManager) Lock(ctx context.Context, accountID int64) error {
	sem := m.getOrCreateSemaphore(accountID)

	timer := time.NewTimer(lockTimeout)
	defer timer.Stop()

	select {
	case sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		m.logger.Error("Failed to acquire lock: context cancelled", zap.Int64("accountID", accountID), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for account %d: %w", accountID, ctx.Err())
	case <-timer.C:
		m.logger.Error("Failed to acquire lock: timeout", zap.Int64("accountID", accountID))
		return fmt.Errorf("failed to acquire lock for account %d: timeout", accountID)
	}
}

// Unlock releases the lock for the given accountID
func (m *AccountLockManager) Unlock(accountID int64) {
	semInterface, ok := m.locks.Load(accountID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("accountID", accountID))
		return
	}
	sem := semInterface.(chan struct{})
	select {
	case <-sem:
	default:
		m.logger.Warn("Unlock called on a lock that was not held", zap.Int64("accountID", accountID))
	}
}

// TryLock attempts to acquire a lock without blocking
func (m *AccountLockManager) TryLock(accountID int64) bool {
	sem := m.getOrCreateSemaphore(accountID)
	select {
	case sem <- struct{}{}:
		return true
	default:
		return false
	}
}

func (m *AccountLockManager) getOrCreateSemaphore(accountID int64) chan struct{} {
	sem, ok := m.locks.Load(accountID)
	if ok {
		return sem.(chan struct{})
	}

	actual, _ := m.locks.LoadOrStore(accountID, make(chan struct{}, 1))
	return actual.(chan struct{})
}
