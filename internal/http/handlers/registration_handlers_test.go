package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/domain"
)

type stubRegistrationService struct {
	registerFunc func(ctx context.Context, email, name, family, password, position string) (*domain.User, error)
}

func (s *stubRegistrationService) Register(ctx context.Context, email, name, family, password, position string) (*domain.User, error) {
	return s.registerFunc(ctx, email, name, family, password, position)
}

type stubVerificationService struct {
	verifyFunc func(ctx context.Context, email, code string) error
	resendFunc func(ctx context.Context, email string) error
}

func (s *stubVerificationService) VerifyEmail(ctx context.Context, email, code string) error {
	return s.verifyFunc(ctx, email, code)
}

func (s *stubVerificationService) ResendCode(ctx context.Context, email string) error {
	return s.resendFunc(ctx, email)
}

func performRequest(t *testing.T, route string, handler gin.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(route, handler)

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, route, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegistrationHandlers_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    RegisterRequest
		registerFunc   func(ctx context.Context, email, name, family, password, position string) (*domain.User, error)
		expectedStatus int
	}{
		{
			name: "successful registration",
			requestBody: RegisterRequest{
				Email:    "a@x.com",
				Name:     "Ann",
				Family:   "Lee",
				Password: "pw1secure",
				Position: "eng",
			},
			registerFunc: func(ctx context.Context, email, name, family, password, position string) (*domain.User, error) {
				return domain.NewUser(email, name, family, "hashed", position), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			requestBody: RegisterRequest{
				Email:    "a@x.com",
				Name:     "Ann",
				Family:   "Lee",
				Password: "pw1secure",
			},
			registerFunc: func(ctx context.Context, email, name, family, password, position string) (*domain.User, error) {
				return nil, domain.ErrUserAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "delivery failure",
			requestBody: RegisterRequest{
				Email:    "a@x.com",
				Name:     "Ann",
				Family:   "Lee",
				Password: "pw1secure",
			},
			registerFunc: func(ctx context.Context, email, name, family, password, position string) (*domain.User, error) {
				return nil, domain.ErrNotificationDelivery
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "invalid email",
			requestBody: RegisterRequest{
				Email:    "not-an-email",
				Name:     "Ann",
				Family:   "Lee",
				Password: "pw1secure",
			},
			registerFunc: func(ctx context.Context, email, name, family, password, position string) (*domain.User, error) {
				t.Error("service must not be called on a binding error")
				return nil, nil
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			requestBody: RegisterRequest{
				Email:    "a@x.com",
				Name:     "Ann",
				Family:   "Lee",
				Password: "pw1",
			},
			registerFunc: func(ctx context.Context, email, name, family, password, position string) (*domain.User, error) {
				t.Error("service must not be called on a binding error")
				return nil, nil
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRegistrationHandlers(
				&stubRegistrationService{registerFunc: tt.registerFunc},
				&stubVerificationService{},
			)

			w := performRequest(t, "/auth/register", h.Register, tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRegistrationHandlers_Verify(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    VerifyRequest
		verifyFunc     func(ctx context.Context, email, code string) error
		expectedStatus int
	}{
		{
			name:        "successful verification",
			requestBody: VerifyRequest{Email: "a@x.com", Code: "042517"},
			verifyFunc: func(ctx context.Context, email, code string) error {
				return nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "no outstanding code",
			requestBody: VerifyRequest{Email: "a@x.com", Code: "042517"},
			verifyFunc: func(ctx context.Context, email, code string) error {
				return domain.ErrCodeNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "wrong code",
			requestBody: VerifyRequest{Email: "a@x.com", Code: "000000"},
			verifyFunc: func(ctx context.Context, email, code string) error {
				return domain.ErrCodeInvalid
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "code of wrong length rejected by binding",
			requestBody: VerifyRequest{Email: "a@x.com", Code: "04251"},
			verifyFunc: func(ctx context.Context, email, code string) error {
				t.Error("service must not be called on a binding error")
				return nil
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRegistrationHandlers(
				&stubRegistrationService{},
				&stubVerificationService{verifyFunc: tt.verifyFunc},
			)

			w := performRequest(t, "/auth/verify", h.Verify, tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRegistrationHandlers_Resend(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    ResendRequest
		resendFunc     func(ctx context.Context, email string) error
		expectedStatus int
	}{
		{
			name:        "successful resend",
			requestBody: ResendRequest{Email: "a@x.com"},
			resendFunc: func(ctx context.Context, email string) error {
				return nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "unknown user",
			requestBody: ResendRequest{Email: "nobody@x.com"},
			resendFunc: func(ctx context.Context, email string) error {
				return domain.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "already verified",
			requestBody: ResendRequest{Email: "a@x.com"},
			resendFunc: func(ctx context.Context, email string) error {
				return domain.ErrAlreadyVerified
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRegistrationHandlers(
				&stubRegistrationService{},
				&stubVerificationService{resendFunc: tt.resendFunc},
			)

			w := performRequest(t, "/auth/resend", h.Resend, tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
