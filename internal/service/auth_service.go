package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/pkg/config"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
)

// sessionState is the slice of the settings store the auth flow touches:
// the active profile and the persisted logged-in flag.
type sessionState interface {
	Profile() models.UserProfile
	AuthFlag(ctx context.Context) bool
	SetAuthFlag(ctx context.Context, value bool)
}

// AuthService implements the simulated single-user login. Credentials are
// checked against the configured username and bcrypt hash; a successful
// login issues a signed token and flips the persisted auth flag.
type AuthService struct {
	auth      config.AuthConfig
	jwt       config.JWTConfig
	state     sessionState
	validator *validator.Validate
	now       func() time.Time
	logger    *zap.Logger
}

// NewAuthService builds the auth service from the loaded configuration.
func NewAuthService(auth config.AuthConfig, jwtCfg config.JWTConfig, state sessionState, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		auth:      auth,
		jwt:       jwtCfg,
		state:     state,
		validator: validate,
		now:       time.Now,
		logger:    logger,
	}
}

// Login validates the credential pair and returns a fresh access token
// plus the active profile.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	if req.Username != s.auth.Username {
		return nil, appErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.auth.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	profile := s.state.Profile()
	expiresAt := s.now().Add(s.jwt.Expiration)

	claims := models.JWTClaims{
		UserID:   profile.ID,
		Username: req.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			Subject:   profile.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	s.state.SetAuthFlag(ctx, true)
	s.logger.Info("user logged in", zap.String("username", req.Username))

	return &models.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		Profile:     profile,
	}, nil
}

// Logout clears the persisted logged-in flag.
func (s *AuthService) Logout(ctx context.Context) {
	s.state.SetAuthFlag(ctx, false)
	s.logger.Info("user logged out")
}

// IsAuthenticated reports the persisted logged-in flag.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.state.AuthFlag(ctx)
}

// ValidateToken parses and verifies a signed access token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwt.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}
