package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"travelo-api/internal/model"
	"travelo-api/pkg/apierror"
)

const minPasswordLength = 6

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)
}

// AuthService hashes credentials and issues/verifies the signed session
// tokens carried in the auth cookie. The signing secret is injected here;
// there is deliberately no ambient or fallback secret.
type AuthService struct {
	users      UserStore
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(secret string, tokenTTL time.Duration, bcryptCost int, users UserStore) (*AuthService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("session secret is required")
	}
	if tokenTTL == 0 {
		tokenTTL = 168 * time.Hour
	}
	if bcryptCost == 0 {
		bcryptCost = 12
	}

	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}, nil
}

// HashPassword applies salted bcrypt; two calls on the same input produce
// different digests.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored digest. A
// malformed digest counts as a mismatch, never an error.
func (s *AuthService) VerifyPassword(password string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// IssueToken mints an HS256-signed token carrying the user identity, an
// issue timestamp in milliseconds and the fixed expiry window.
func (s *AuthService) IssueToken(userID string, email string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"ts":    now.UnixMilli(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	})

	return token.SignedString(s.secret)
}

// VerifyToken checks signature and expiry. Every failure mode, from a
// malformed string to a tampered payload, collapses into the same
// authentication error; callers never see parser internals.
func (s *AuthService) VerifyToken(tokenString string) (*model.SessionClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apierror.Unauthorized("Invalid or expired session")
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Unauthorized("Invalid or expired session")
	}

	claims := &model.SessionClaims{}
	claims.UserID, _ = claimsMap["sub"].(string)
	claims.Email, _ = claimsMap["email"].(string)
	if ts, tsOK := claimsMap["ts"].(float64); tsOK {
		claims.Timestamp = int64(ts)
	}
	if iat, iatErr := claimsMap.GetIssuedAt(); iatErr == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, expErr := claimsMap.GetExpirationTime(); expErr == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	if claims.UserID == "" {
		return nil, apierror.Unauthorized("Invalid or expired session")
	}

	return claims, nil
}

// Login validates the request shape before any persistence access, then
// verifies credentials and issues a session token. A missing user and a
// wrong password return the same generic failure so accounts cannot be
// enumerated; the distinction is only logged server-side.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.AuthUser, string, error) {
	email = strings.TrimSpace(email)
	if err := validateLoginInput(email, password); err != nil {
		return model.AuthUser{}, "", err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		slog.Warn("login failed: unknown email", "email", email)
		return model.AuthUser{}, "", apierror.Unauthorized("Invalid credentials")
	}

	if !s.VerifyPassword(password, user.PasswordHash) {
		slog.Warn("login failed: password mismatch", "user_id", user.ID)
		return model.AuthUser{}, "", apierror.Unauthorized("Invalid credentials")
	}

	token, err := s.IssueToken(user.ID, user.Email)
	if err != nil {
		return model.AuthUser{}, "", err
	}

	return model.AuthUser{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}, token, nil
}

// CurrentUser resolves the session token to the full stored user record.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (model.User, error) {
	return s.users.FindByID(ctx, userID)
}

func validateLoginInput(email string, password string) error {
	if email == "" {
		return apierror.BadRequest("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apierror.BadRequest("Invalid email address")
	}
	if len(password) < minPasswordLength {
		return apierror.BadRequest("Password must be at least 6 characters")
	}

	return nil
}
