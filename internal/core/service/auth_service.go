package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/relutech/asset-management/internal/api/metrics"
	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// dummyHash is compared against when the username does not resolve, so
// a failed lookup costs the same as a failed password check.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-account"), bcrypt.DefaultCost)

// AuthService implements login, logout and self-registration.
type AuthService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts:  accounts,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// burn the same effort as a real password check
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil || !account.IsActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.accounts.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return "", nil, err
	}
	account.LastLogin = &now

	jti := newSessionID()
	token, err := s.signToken(account, jti)
	if err != nil {
		return "", nil, err
	}
	if err := s.sessions.Save(ctx, jti, account.ID, s.tokenTTL); err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", account.Username).Bool("is_admin", account.IsAdmin).Msg("login")
	return token, account, nil
}

func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if jti == "" {
		return domain.ErrUnauthenticated
	}
	return s.sessions.Delete(ctx, jti)
}

// Register creates a non-admin account from the self-registration
// form. The is_admin flag can never be set through this path.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if err := validateNewAccount(ctx, s.accounts, input.Username, input.Email, input.Password1, input.Password2); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			// lost a race with a concurrent registration
			return nil, domain.ValidationError{"username": {"An account with that username or email already exists."}}
		}
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues("self").Inc()
	s.logger.Info().Str("username", created.Username).Msg("account registered")
	return created, nil
}

// validateNewAccount folds field validation, password confirmation and
// uniqueness pre-checks into a single field → messages map. The unique
// indexes remain the last word for concurrent creations.
func validateNewAccount(ctx context.Context, accounts ports.AccountRepository, username, email, password1, password2 string) error {
	fieldErrs := domain.ValidationError{}
	if err := checkStruct(ports.RegisterInput{
		Username:  username,
		Email:     email,
		Password1: password1,
		Password2: password2,
	}); err != nil {
		ve, ok := domain.AsValidationError(err)
		if !ok {
			return err
		}
		fieldErrs = ve
	}

	if password1 != "" && password2 != "" && password1 != password2 {
		fieldErrs.Add("password2", "The passwords do not match.")
	}

	if username != "" {
		if _, err := accounts.FindByUsername(ctx, username); err == nil {
			fieldErrs.Add("username", "A user with that username already exists.")
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
	}
	if email != "" {
		if _, err := accounts.FindByEmail(ctx, email); err == nil {
			fieldErrs.Add("email", "A user with that email already exists.")
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
	}

	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

func (s *AuthService) signToken(account *domain.Account, jti string) (string, error) {
	claims := jwt.MapClaims{
		"sub":          account.ID,
		"username":     account.Username,
		"is_admin":     account.IsAdmin,
		"is_superuser": account.IsSuperuser,
		"jti":          jti,
		"exp":          time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format("20060102150405.000000000")))
	}
	return hex.EncodeToString(b)
}
