// Package service holds the site's business logic: contact intake and delivery,
// visitor tracking, outbound link resolution and the admin aggregate.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/repository"
)

// ContactService validates contact submissions and queues them for delivery.
type ContactService struct {
	messages *repository.MessageRepository
	validate *validator.Validate
	log      *zap.Logger
	wake     func()
	now      func() time.Time
}

// NewContactService creates a new ContactService. wake is called after every
// accepted submission and may be nil.
func NewContactService(messages *repository.MessageRepository, wake func(), log *zap.Logger) *ContactService {
	v := validator.New()
	// Same rules gin applies when binding the form.
	v.SetTagName("binding")

	if wake == nil {
		wake = func() {}
	}
	return &ContactService{
		messages: messages,
		validate: v,
		log:      log,
		wake:     wake,
		now:      time.Now,
	}
}

// Submit trims and validates the form, stores a pending message and wakes the
// delivery worker. Validation failures wrap domain.ErrInvalidMessage.
func (s *ContactService) Submit(ctx context.Context, form domain.ContactForm) (*domain.Message, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)

	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMessage, describe(err))
	}

	now := s.now().UTC()
	m := &domain.Message{
		ID:            uuid.NewString(),
		Name:          form.Name,
		Email:         form.Email,
		Body:          form.Message,
		Status:        domain.MessageStatusPending,
		CreatedAt:     now,
		NextAttemptAt: now,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("queue message: %w", err)
	}

	s.log.Info("contact message queued",
		zap.String("message_id", m.ID),
		zap.Int("length", len(m.Body)))

	s.wake()
	return m, nil
}

// describe turns validator errors into one line naming the first bad field.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "email is not a valid address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
