package service

import (
	"time"

	"github.com/compravenda/api/internal/config"
	"github.com/compravenda/api/internal/constants"
	"github.com/compravenda/api/internal/models"
	"github.com/compravenda/api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserAuthService issues and validates the access/refresh token pair.
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewUserAuthService creates the auth service.
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{cfg: cfg, userRepo: userRepo}
}

// UserJWTClaims is the signed token payload. TokenType distinguishes
// access tokens from refresh tokens so one can never stand in for the
// other.
type UserJWTClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is the login/refresh response.
type TokenPair struct {
	Access         string    `json:"access"`
	Refresh        string    `json:"refresh"`
	AccessExpires  time.Time `json:"access_expira_em"`
	RefreshExpires time.Time `json:"refresh_expira_em"`
}

// Login verifies credentials and issues a token pair.
func (s *UserAuthService) Login(username, password string) (*TokenPair, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.generatePair(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *UserAuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != constants.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidToken
	}
	return s.generatePair(user)
}

// ParseToken validates signature and expiry and returns the claims.
func (s *UserAuthService) ParseToken(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

func (s *UserAuthService) generatePair(user *models.User) (*TokenPair, error) {
	access, accessExpires, err := s.sign(user, constants.TokenTypeAccess, s.accessExpireHours())
	if err != nil {
		return nil, err
	}
	refresh, refreshExpires, err := s.sign(user, constants.TokenTypeRefresh, s.refreshExpireHours())
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		Access:         access,
		Refresh:        refresh,
		AccessExpires:  accessExpires,
		RefreshExpires: refreshExpires,
	}, nil
}

func (s *UserAuthService) sign(user *models.User, tokenType string, expireHours int) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *UserAuthService) accessExpireHours() int {
	if s.cfg.JWT.AccessExpireHours > 0 {
		return s.cfg.JWT.AccessExpireHours
	}
	return 2
}

func (s *UserAuthService) refreshExpireHours() int {
	if s.cfg.JWT.RefreshExpireHours > 0 {
		return s.cfg.JWT.RefreshExpireHours
	}
	return 24 * 7
}
