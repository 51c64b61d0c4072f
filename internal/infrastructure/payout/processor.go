package payout

import (
	"context"
	"sync"
	"time"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	drainBatchSize = 100
	drainInterval  = 1 * time.Minute
)

// Processor drives pending prize payouts to the external points service.
// Each record carries its own persisted idempotency key, so re-driving a
// record after a timeout or crash cannot double-pay.
type Processor struct {
	tournamentRepo domain.TournamentRepository
	accountRepo    domain.AccountRepository
	pointsService  domain.PointsService
	logger         *logger.Logger
	dryRun         bool

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewProcessor creates a new payout processor
func NewProcessor(
	tournamentRepo domain.TournamentRepository,
	accountRepo domain.AccountRepository,
	pointsService domain.PointsService,
	logger *logger.Logger,
	dryRun bool,
) domain.PayoutProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		tournamentRepo: tournamentRepo,
		accountRepo:    accountRepo,
		pointsService:  pointsService,
		logger:         logger,
		dryRun:         dryRun,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// StartBackgroundProcessing starts the periodic drain loop
func (p *Processor) StartBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		p.logger.Warn("Payout processor already running")
		return
	}
	p.isRunning = true

	p.wg.Add(1)
	go p.run()

	p.logger.Info("Payout processor started", zap.Duration("interval", drainInterval))
}

// StopBackgroundProcessing stops the drain loop and waits for it to finish
func (p *Processor) StopBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		return
	}

	p.cancel()
	p.wg.Wait()
	p.isRunning = false

	p.logger.Info("Payout processor stopped")
}

func (p *Processor) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.Drain(); err != nil {
				p.logger.Error("Payout drain pass failed", zap.Error(err))
			}
		}
	}
}

// Drain processes all pending payouts once. Records fail or succeed
// independently; a single bad record never blocks the rest of the batch.
func (p *Processor) Drain() (*domain.DrainResult, error) {
	pending, err := p.tournamentRepo.GetPendingPayouts(drainBatchSize)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to load pending payouts", 500, err)
	}

	result := &domain.DrainResult{}
	for _, record := range pending {
		result.Processed++
		if err := p.processRecord(record); err != nil {
			result.Failed++
			p.logger.Error("Payout failed",
				zap.Int64("payout_id", record.ID),
				zap.String("date", record.Date),
				zap.Error(err))
			continue
		}
		result.Sent++
	}

	if result.Processed > 0 {
		p.logger.Info("Payout drain pass finished",
			zap.Int("processed", result.Processed),
			zap.Int("sent", result.Sent),
			zap.Int("failed", result.Failed))
	}

	return result, nil
}

// processRecord drives one payout to a terminal state. The marked status is
// the source of truth; the send uses the record's persisted idempotency key.
func (p *Processor) processRecord(record *domain.PayoutRecord) error {
	account, err := p.accountRepo.GetByID(record.AccountID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get payout account", 500, err)
	}
	if account == nil || account.IdentityKey == nil {
		if markErr := p.tournamentRepo.MarkPayoutFailed(record.ID, domain.ErrCodeNoExternalIdentity); markErr != nil {
			return markErr
		}
		return domain.NewAppError(domain.ErrCodeNoExternalIdentity, "Winner has no external identity link", 422, nil)
	}

	if p.dryRun {
		payload := domain.JSONB{
			"dry_run": true,
			"points":  record.Points,
			"date":    record.Date,
		}
		if err := p.tournamentRepo.MarkPayoutSent(record.ID, payload); err != nil {
			return err
		}
		p.logger.Info("Payout sent (dry run)",
			zap.Int64("payout_id", record.ID),
			zap.Int64("points", record.Points))
		return nil
	}

	resp, err := p.pointsService.SendPoints(domain.PointsTransferRequest{
		UserKey:        *account.IdentityKey,
		Points:         record.Points,
		IdempotencyKey: record.IdempotencyKey,
		Reason:         "daily-prize-" + record.Date,
	})
	if err != nil {
		if markErr := p.tournamentRepo.MarkPayoutFailed(record.ID, err.Error()); markErr != nil {
			return markErr
		}
		return err
	}

	payload := domain.JSONB{
		"transfer_id": resp.TransferID,
		"status":      resp.Status,
	}
	if err := p.tournamentRepo.MarkPayoutSent(record.ID, payload); err != nil {
		return err
	}

	p.logger.Info("Payout sent",
		zap.Int64("payout_id", record.ID),
		zap.Int64("points", record.Points),
		zap.String("transfer_id", resp.TransferID))
	return nil
}

// Redrive flips FAILED payouts for a date back to PENDING
func (p *Processor) Redrive(date string) (int64, error) {
	reset, err := p.tournamentRepo.RedrivePayouts(date)
	if err != nil {
		return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to redrive payouts", 500, err)
	}
	if reset > 0 {
		p.logger.Info("Payouts redriven", zap.String("date", date), zap.Int64("reset", reset))
	}
	return reset, nil
}
