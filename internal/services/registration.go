package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"charityevents/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	logger           *slog.Logger
	contextTimeout   time.Duration
}

// NewRegistrationService creates the registration workflow service. The email
// service may be nil, in which case no confirmation email is sent.
func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		emailService:     emailService,
		logger:           logger,
		contextTimeout:   timeout,
	}
}

func (s *registrationService) Register(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg.FullName = strings.TrimSpace(reg.FullName)
	reg.Email = strings.TrimSpace(reg.Email)
	if reg.EventID == 0 || reg.FullName == "" || reg.Email == "" || reg.TicketQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	event, err := s.registrationRepo.Register(ctx, reg)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if s.emailService != nil {
		// Confirmation email is fire-and-forget; the registration stands
		// whether or not the email goes out.
		data := &domain.RegistrationConfirmationEmailData{
			Email:          reg.Email,
			FullName:       reg.FullName,
			EventName:      event.Name,
			TicketQuantity: reg.TicketQuantity,
			TotalAmount:    reg.TotalAmount,
		}
		go func() {
			if err := s.emailService.SendRegistrationConfirmation(context.Background(), data); err != nil {
				s.logger.Error("send registration confirmation", "email", data.Email, "err", err)
			}
		}()
	}

	return reg, nil
}
