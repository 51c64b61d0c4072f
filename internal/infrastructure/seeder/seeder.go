package seeder

import (
	"fmt"
	"log"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	accountRepo domain.AccountRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(accountRepo domain.AccountRepository) *Seeder {
	return &Seeder{
		accountRepo: accountRepo,
	}
}

// SeedAccounts seeds the database with development accounts. Existing
// nicknames are skipped so reseeding is safe.
func (s *Seeder) SeedAccounts() error {
	log.Printf("Seeding accounts...")

	seeds := []struct {
		nickname    string
		identityKey string
	}{
		{"lucky_fox", "dev-identity-0001"},
		{"coin_goblin", "dev-identity-0002"},
		{"probability_pete", ""},
		{"all_in_alice", "dev-identity-0004"},
	}

	for _, seed := range seeds {
		existing, err := s.accountRepo.GetByNickname(seed.nickname)
		if err != nil {
			return fmt.Errorf("failed to check account %s: %w", seed.nickname, err)
		}
		if existing != nil {
			log.Printf("Account already exists, skipping.")
			continue
		}

		nickname := seed.nickname
		account := &domain.Account{
			Nickname: &nickname,
			Coins:    domain.StartingCoins,
		}
		if seed.identityKey != "" {
			identityKey := seed.identityKey
			account.IdentityKey = &identityKey
		}

		if err := s.accountRepo.Create(account); err != nil {
			return fmt.Errorf("failed to create account %s: %w", seed.nickname, err)
		}
		log.Printf("Successfully created account.")
	}

	log.Printf("Account seeding completed successfully")
	return nil
}
