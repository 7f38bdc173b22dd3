package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/repository"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
)

// AuthConfig defines configuration for session issuance.
type AuthConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
	Issuer        string
}

// AuthService verifies credentials and manages the session lifecycle. The
// client holds an HS256-signed token naming a server-side session binding;
// the binding store remains the source of truth, so revocation is immediate.
type AuthService struct {
	users     *repository.UserRepository
	sessions  *repository.SessionRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.SessionTTL == 0 {
		config.SessionTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, validator: validate, logger: logger, config: config}
}

// Login authenticates a user and starts a session. priorToken, when present,
// names the session already held by this cookie jar; it is ended first so a
// browser never carries two live sessions.
func (s *AuthService) Login(req models.LoginRequest, priorToken string) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	// Same generic rejection for unknown identity and wrong secret.
	if !s.users.Verify(req.Email, req.Password) {
		return nil, appErrors.ErrInvalidCredentials
	}

	user, ok := s.users.Lookup(req.Email)
	if !ok {
		return nil, appErrors.ErrInvalidCredentials
	}

	if priorToken != "" {
		s.Logout(priorToken)
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := s.signToken(sessionID, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue session token")
	}
	s.sessions.Create(sessionID, user.Email)

	s.logger.Info("session started", zap.String("email", user.Email), zap.String("role", string(user.Role)))

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      models.NewUserInfo(user),
	}, nil
}

// Resolve maps a session token to the current user record. Any failure mode
// (missing, malformed, bad signature, expired, unknown session, deleted user)
// resolves to nil: absence of a session is a normal state, not an error.
func (s *AuthService) Resolve(token string) *models.User {
	if token == "" {
		return nil
	}

	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	email, ok := s.sessions.Resolve(claims.SessionID)
	if !ok {
		return nil
	}

	user, ok := s.users.Lookup(email)
	if !ok {
		return nil
	}
	return user
}

// Logout ends the session named by the token. Idempotent: malformed tokens
// and already-ended sessions are no-ops.
func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	claims, err := s.parseToken(token)
	if err != nil {
		return
	}
	s.sessions.Delete(claims.SessionID)
}

func (s *AuthService) signToken(sessionID string, user *models.User) (string, time.Time, error) {
	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.SessionTTL)
	claims := &models.SessionClaims{
		SessionID: sessionID,
		Email:     user.Email,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SessionSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *AuthService) parseToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SessionSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid session claims")
	}

	return claims, nil
}
