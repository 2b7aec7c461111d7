package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pizza-store/internal/domain"
)

// userColumns whitelists the mutable columns of the users table.
// UpdateField only ever interpolates column names taken from this map;
// values always travel as bind parameters.
var userColumns = map[domain.UserField]string{
	domain.FieldPhoneNum:      "phoneNum",
	domain.FieldPassword:      "password",
	domain.FieldFavoriteItems: "favoriteItems",
	domain.FieldLogin:         "login",
	domain.FieldRole:          "role",
}

// ColumnForField resolves a user field to its column name, rejecting
// anything outside the whitelist.
func ColumnForField(field domain.UserField) (string, error) {
	col, ok := userColumns[field]
	if !ok {
		return "", fmt.Errorf("unknown user field %q", field)
	}
	return col, nil
}

// UserRepository defines persistence access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	ExistsByCredentials(ctx context.Context, login, password string) (bool, error)
	UpdateField(ctx context.Context, login string, field domain.UserField, value string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (login, password, role, favoriteItems, phoneNum)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		user.Login,
		user.Password,
		user.Role,
		user.FavoriteItems,
		user.PhoneNum,
	)
	return err
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	const query = `
        SELECT login, password, role, favoriteItems, phoneNum
        FROM users WHERE login=$1`

	var (
		user domain.User
		role string
	)
	if err := r.pool.QueryRow(ctx, query, login).Scan(
		&user.Login,
		&user.Password,
		&role,
		&user.FavoriteItems,
		&user.PhoneNum,
	); err != nil {
		return nil, err
	}
	user.Role = domain.ParseRole(role)
	return &user, nil
}

// ExistsByCredentials reports whether a row matches the login and the
// exact password value.
func (r *userRepository) ExistsByCredentials(ctx context.Context, login, password string) (bool, error) {
	const query = `SELECT COUNT(*) FROM users WHERE login=$1 AND password=$2`

	var count int
	if err := r.pool.QueryRow(ctx, query, login, password).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateField overwrites exactly one whitelisted column on exactly one
// row. A zero row count surfaces as pgx.ErrNoRows.
func (r *userRepository) UpdateField(ctx context.Context, login string, field domain.UserField, value string) error {
	col, err := ColumnForField(field)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE users SET %s=$1 WHERE login=$2`, col)
	cmd, err := r.pool.Exec(ctx, query, value, login)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
