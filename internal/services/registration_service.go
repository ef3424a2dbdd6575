package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/you/regsvc/domain"
)

// RegistrationServiceImpl implements domain.RegistrationService
type RegistrationServiceImpl struct {
	userRepo    domain.UserRepository
	notifier    domain.Notifier
	codeCache   domain.CodeCache
	passwordSvc domain.PasswordService
	codeGen     domain.CodeGenerator
	logger      *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	userRepo domain.UserRepository,
	notifier domain.Notifier,
	codeCache domain.CodeCache,
	passwordSvc domain.PasswordService,
	codeGen domain.CodeGenerator,
	logger *zap.Logger,
) domain.RegistrationService {
	return &RegistrationServiceImpl{
		userRepo:    userRepo,
		notifier:    notifier,
		codeCache:   codeCache,
		passwordSvc: passwordSvc,
		codeGen:     codeGen,
		logger:      logger,
	}
}

// Register drives the registration sequence: existence check, password hash,
// insert, code generation, delivery, cache write. The insert is the commit
// point; a failed delivery is surfaced without rolling the user back, and the
// code is cached only after the notifier acknowledged it. Dependency faults
// pass through untranslated. Email uniqueness under concurrent registrations
// is the store's job (unique index), not this service's.
func (s *RegistrationServiceImpl) Register(ctx context.Context, email, name, family, password, position string) (*domain.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Insert(ctx, domain.NewUser(email, name, family, hashed, position))
	if err != nil {
		return nil, err
	}

	code, err := s.codeGen.Generate()
	if err != nil {
		return nil, err
	}

	outcome, err := s.notifier.SendEmailRequest(ctx, user.Email, code)
	if err != nil {
		return nil, err
	}
	if !outcome.Delivered {
		s.logger.Warn("verification code not delivered",
			zap.String("email", email),
			zap.String("reason", outcome.Reason))
		return nil, domain.ErrNotificationDelivery
	}

	if err := s.codeCache.StoreCode(ctx, email, code); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))
	return user, nil
}
