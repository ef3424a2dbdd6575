package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/domain"
)

// RegistrationHandlers handles registration and verification HTTP requests
type RegistrationHandlers struct {
	registrationSvc domain.RegistrationService
	verificationSvc domain.VerificationService
}

// NewRegistrationHandlers creates new registration handlers
func NewRegistrationHandlers(registrationSvc domain.RegistrationService, verificationSvc domain.VerificationService) *RegistrationHandlers {
	return &RegistrationHandlers{
		registrationSvc: registrationSvc,
		verificationSvc: verificationSvc,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Family   string `json:"family" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Position string `json:"position"`
}

// VerifyRequest represents email verification request
type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResendRequest represents code resend request
type ResendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Register handles user registration
func (h *RegistrationHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.registrationSvc.Register(c.Request.Context(), req.Email, req.Name, req.Family, req.Password, req.Position)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		case errors.Is(err, domain.ErrNotificationDelivery):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not deliver verification code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "User registered successfully. Please verify your email.",
			"user_id": user.ID,
			"email":   user.Email,
			"role":    user.Role,
		},
	})
}

// Verify handles email verification
func (h *RegistrationHandlers) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.verificationSvc.VerifyEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No verification code outstanding"})
		case errors.Is(err, domain.ErrCodeInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Email verified successfully"},
	})
}

// Resend handles verification code resend
func (h *RegistrationHandlers) Resend(c *gin.Context) {
	var req ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.verificationSvc.ResendCode(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrAlreadyVerified):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already verified"})
		case errors.Is(err, domain.ErrNotificationDelivery):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not deliver verification code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend verification code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Verification code sent"},
	})
}
