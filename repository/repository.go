package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickcare/backend-api-go/events"
	"github.com/quickcare/backend-api-go/users"
)

const queryTimeout = 5 * time.Second

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository is the Postgres store behind accounts, profiles and search
// history.
type Repository struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, connStr string) (*Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	return &Repository{
		pool: pool,
	}, nil
}

func (repo *Repository) Close() {
	repo.pool.Close()
}

func (repo *Repository) Ping(ctx context.Context) error {
	return repo.pool.Ping(ctx)
}

func (repo *Repository) CreateAccount(ctx context.Context, account users.Account) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q, args, err := insertAccountQuery(account)
	if err != nil {
		return err
	}

	if _, err := repo.pool.Exec(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("could not insert account: %w", err)
	}

	return nil
}

func (repo *Repository) GetAccountByEmail(ctx context.Context, email string) (*users.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q, args, err := psql.Select("id", "email", "password_hash", "created_at").
		From("accounts").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var account users.Account
	err = repo.pool.QueryRow(ctx, q, args...).Scan(&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not query account: %w", err)
	}

	return &account, nil
}

// SaveUser writes the whole profile document, replacing any previous one.
func (repo *Repository) SaveUser(ctx context.Context, user users.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q, args, err := upsertUserQuery(user)
	if err != nil {
		return err
	}

	if _, err := repo.pool.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("could not save user: %w", err)
	}

	return nil
}

func (repo *Repository) GetUser(ctx context.Context, id string) (*users.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q, args, err := psql.Select("id", "username", "image_url", "email", "phone_number", "therapist", "bio").
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user users.User
	err = repo.pool.QueryRow(ctx, q, args...).Scan(&user.ID,
		&user.Username,
		&user.ImageURL,
		&user.Email,
		&user.PhoneNumber,
		&user.Therapist,
		&user.Bio)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not query user: %w", err)
	}

	return &user, nil
}

// UpdateUserField sets a single profile field.
func (repo *Repository) UpdateUserField(ctx context.Context, id string, field users.Field, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q, args, err := updateUserFieldQuery(id, field, value)
	if err != nil {
		return err
	}

	tag, err := repo.pool.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (repo *Repository) InsertSearch(ctx context.Context, search events.SearchPerformed) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q, args, err := insertSearchQuery(search)
	if err != nil {
		return err
	}

	if _, err := repo.pool.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("could not insert search: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
