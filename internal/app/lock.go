package app

import "github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/lock"

func (a *application) InitAccountLockManager() *lock.AccountLockManager {
	return lock.NewAccountLockManager()
}
