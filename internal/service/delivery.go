package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/repository"
)

const maxRetryDelay = 6 * time.Hour

// DeliveryOptions tunes the delivery worker. Zero values take defaults.
//
// Interval is the poll period and the base delay between passes for a failing
// message. MaxAttempts is the number of passes before a message is marked
// failed. Retries, RetryBase and RetryCap shape the immediate retries inside
// one pass. Lease is how long a claimed message is hidden from other workers.
type DeliveryOptions struct {
	Interval    time.Duration
	MaxAttempts int
	Retries     uint64
	RetryBase   time.Duration
	RetryCap    time.Duration
	Lease       time.Duration
	BatchSize   uint64
}

func (o DeliveryOptions) withDefaults() DeliveryOptions {
	if o.Interval <= 0 {
		o.Interval = 30 * time.Second
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 5
	}
	if o.RetryBase <= 0 {
		o.RetryBase = 500 * time.Millisecond
	}
	if o.RetryCap <= 0 {
		o.RetryCap = 5 * time.Second
	}
	if o.Lease <= 0 {
		o.Lease = 5 * time.Minute
	}
	if o.BatchSize == 0 {
		o.BatchSize = 20
	}
	return o
}

// DeliveryReport summarizes one pass over the queue.
type DeliveryReport struct {
	Sent    int `json:"sent"`
	Retried int `json:"retried"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// DeliveryWorker drains the contact message queue through a Mailer.
type DeliveryWorker struct {
	messages *repository.MessageRepository
	mailer   Mailer
	log      *zap.Logger
	opts     DeliveryOptions
	wake     chan struct{}
	now      func() time.Time
}

// NewDeliveryWorker creates a new DeliveryWorker.
func NewDeliveryWorker(messages *repository.MessageRepository, mailer Mailer, log *zap.Logger, opts DeliveryOptions) *DeliveryWorker {
	return &DeliveryWorker{
		messages: messages,
		mailer:   mailer,
		log:      log,
		opts:     opts.withDefaults(),
		wake:     make(chan struct{}, 1),
		now:      time.Now,
	}
}

// Wake asks a running worker to start a pass now. It never blocks.
func (w *DeliveryWorker) Wake() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Run flushes the queue on every tick or wake until ctx is cancelled.
func (w *DeliveryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()

	w.log.Info("delivery worker started",
		zap.Duration("interval", w.opts.Interval),
		zap.Int("max_attempts", w.opts.MaxAttempts))

	disabledLogged := false
	for {
		report, err := w.Flush(ctx)
		switch {
		case errors.Is(err, domain.ErrMailerDisabled):
			if !disabledLogged {
				w.log.Warn("mailer disabled, contact messages stay queued")
				disabledLogged = true
			}
		case err != nil && ctx.Err() == nil:
			w.log.Error("delivery pass failed", zap.Error(err))
		case report != (DeliveryReport{}):
			w.log.Info("delivery pass",
				zap.Int("sent", report.Sent),
				zap.Int("retried", report.Retried),
				zap.Int("failed", report.Failed),
				zap.Int("skipped", report.Skipped))
		}

		select {
		case <-ctx.Done():
			w.log.Info("delivery worker stopped")
			return nil
		case <-ticker.C:
		case <-w.wake:
		}
	}
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeRetried
	outcomeFailed
	outcomeSkipped
)

// Flush makes one pass over the messages that are due. A disabled mailer stops
// the pass with domain.ErrMailerDisabled and leaves the queue untouched.
func (w *DeliveryWorker) Flush(ctx context.Context) (DeliveryReport, error) {
	var report DeliveryReport

	due, err := w.messages.DuePending(ctx, w.now(), w.opts.BatchSize)
	if err != nil {
		return report, fmt.Errorf("list due messages: %w", err)
	}

	for i := range due {
		res, err := w.deliver(ctx, &due[i])
		if err != nil {
			if errors.Is(err, domain.ErrMailerDisabled) || ctx.Err() != nil {
				return report, err
			}
			w.log.Error("deliver message", zap.String("message_id", due[i].ID), zap.Error(err))
			continue
		}

		switch res {
		case outcomeSent:
			report.Sent++
		case outcomeRetried:
			report.Retried++
		case outcomeFailed:
			report.Failed++
		case outcomeSkipped:
			report.Skipped++
		}
	}
	return report, nil
}

func (w *DeliveryWorker) deliver(ctx context.Context, m *domain.Message) (outcome, error) {
	now := w.now()
	won, err := w.messages.Claim(ctx, m.ID, now, now.Add(w.opts.Lease))
	if err != nil {
		return outcomeSkipped, fmt.Errorf("claim: %w", err)
	}
	if !won {
		return outcomeSkipped, nil
	}

	backoff := retry.WithMaxRetries(w.opts.Retries,
		retry.WithCappedDuration(w.opts.RetryCap, retry.NewExponential(w.opts.RetryBase)))

	sendErr := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := w.mailer.Send(ctx, m)
		if err == nil || errors.Is(err, domain.ErrMailerDisabled) {
			return err
		}
		return retry.RetryableError(err)
	})

	attempts := m.Attempts + 1
	switch {
	case sendErr == nil:
		if err := w.messages.MarkSent(ctx, m.ID, attempts, w.now()); err != nil {
			return outcomeSent, err
		}
		w.log.Info("contact message delivered", zap.String("message_id", m.ID), zap.Int("attempts", attempts))
		return outcomeSent, nil

	case errors.Is(sendErr, domain.ErrMailerDisabled):
		// Release the lease without spending an attempt.
		if err := w.messages.MarkRetry(ctx, m.ID, m.Attempts, m.LastError, now); err != nil {
			return outcomeSkipped, err
		}
		return outcomeSkipped, sendErr

	case ctx.Err() != nil:
		return outcomeSkipped, ctx.Err()

	case attempts >= w.opts.MaxAttempts:
		if err := w.messages.MarkFailed(ctx, m.ID, attempts, sendErr.Error()); err != nil {
			return outcomeFailed, err
		}
		w.log.Warn("contact message undeliverable",
			zap.String("message_id", m.ID),
			zap.Int("attempts", attempts),
			zap.Error(fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, sendErr)))
		return outcomeFailed, nil

	default:
		next := now.Add(w.retryDelay(attempts))
		if err := w.messages.MarkRetry(ctx, m.ID, attempts, sendErr.Error(), next); err != nil {
			return outcomeRetried, err
		}
		w.log.Warn("contact message delivery failed, will retry",
			zap.String("message_id", m.ID),
			zap.Int("attempts", attempts),
			zap.Time("next_attempt_at", next),
			zap.Error(sendErr))
		return outcomeRetried, nil
	}
}

// retryDelay doubles the poll interval per failed pass.
func (w *DeliveryWorker) retryDelay(attempts int) time.Duration {
	d := w.opts.Interval
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}
