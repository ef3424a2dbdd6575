package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/you/regsvc/domain"
)

// VerificationServiceImpl implements domain.VerificationService
type VerificationServiceImpl struct {
	userRepo  domain.UserRepository
	notifier  domain.Notifier
	codeCache domain.CodeCache
	codeGen   domain.CodeGenerator
	logger    *zap.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	userRepo domain.UserRepository,
	notifier domain.Notifier,
	codeCache domain.CodeCache,
	codeGen domain.CodeGenerator,
	logger *zap.Logger,
) domain.VerificationService {
	return &VerificationServiceImpl{
		userRepo:  userRepo,
		notifier:  notifier,
		codeCache: codeCache,
		codeGen:   codeGen,
		logger:    logger,
	}
}

// VerifyEmail checks the submitted code against the cached one and, on a
// match, marks the user verified and active. The code is single-use: it is
// dropped from the cache once accepted.
func (s *VerificationServiceImpl) VerifyEmail(ctx context.Context, email, code string) error {
	stored, err := s.codeCache.RetrieveCode(ctx, email)
	if err != nil {
		return err
	}
	if stored == "" {
		return domain.ErrCodeNotFound
	}
	if stored != code {
		return domain.ErrCodeInvalid
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if _, err := s.userRepo.Update(ctx, user.ID, map[string]any{
		"email_verified": true,
		"is_verified":    true,
		"is_active":      true,
	}); err != nil {
		return err
	}

	if err := s.codeCache.DeleteCode(ctx, email); err != nil {
		// The user is already verified; a leftover key only lives until TTL.
		s.logger.Warn("failed to drop used verification code",
			zap.String("email", email), zap.Error(err))
	}

	s.logger.Info("email verified", zap.String("email", email))
	return nil
}

// ResendCode issues a fresh code for an unverified user. Storing it replaces
// whatever code was outstanding, so only the latest one verifies.
func (s *VerificationServiceImpl) ResendCode(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.EmailVerified {
		return domain.ErrAlreadyVerified
	}

	code, err := s.codeGen.Generate()
	if err != nil {
		return err
	}

	outcome, err := s.notifier.SendEmailRequest(ctx, email, code)
	if err != nil {
		return err
	}
	if !outcome.Delivered {
		s.logger.Warn("verification code not delivered",
			zap.String("email", email),
			zap.String("reason", outcome.Reason))
		return domain.ErrNotificationDelivery
	}

	return s.codeCache.StoreCode(ctx, email, code)
}
