package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickcare/backend-api-go/repository"
	"github.com/quickcare/backend-api-go/users"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	ErrEmailTaken         = errors.New("email address is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("email address is badly formatted")
	ErrWeakPassword       = errors.New("password should be at least 6 characters")
)

// Provider is the identity provider: account creation and credential
// checks. Both return the provider-issued user id.
type Provider interface {
	CreateUser(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

type AccountStore interface {
	CreateAccount(ctx context.Context, account users.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*users.Account, error)
}

// PasswordProvider keeps email/password accounts with bcrypt hashes.
type PasswordProvider struct {
	store AccountStore
	cost  int
	now   func() time.Time
}

func NewPasswordProvider(store AccountStore) *PasswordProvider {
	return &PasswordProvider{store: store, cost: bcrypt.DefaultCost, now: time.Now}
}

func (p *PasswordProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	account := users.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    p.now(),
	}
	if err := p.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return account.ID, nil
}

func (p *PasswordProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	account, err := p.store.GetAccountByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return account.ID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
