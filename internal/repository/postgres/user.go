package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clipstream/account-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, username, email, full_name, avatar_url, cover_image_url, password_hash, refresh_token_hash, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.AvatarURL,
		&user.CoverImageURL, &user.PasswordHash, &user.RefreshTokenHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// GetByLogin matches the identifier against username or email.
func (r *UserRepository) GetByLogin(ctx context.Context, usernameOrEmail string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, usernameOrEmail))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by login: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, email, full_name, avatar_url, cover_image_url, password_hash)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns

	savedUser, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.AvatarURL,
		user.CoverImageURL, user.PasswordHash,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrConflict
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return savedUser, nil
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) (model.User, error) {
	query := `UPDATE users SET full_name = $2, email = $3, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, fullName, email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		if isUniqueViolation(err) {
			return model.User{}, model.ErrConflict
		}
		return model.User{}, fmt.Errorf("failed to update account: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (model.User, error) {
	query := `UPDATE users SET avatar_url = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, avatarURL))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to update avatar: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, coverImageURL string) (model.User, error) {
	query := `UPDATE users SET cover_image_url = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, coverImageURL))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to update cover image: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash []byte) error {
	query := `UPDATE users SET refresh_token_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, hash)
	if err != nil {
		return fmt.Errorf("failed to set refresh token hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// RotateRefreshTokenHash is a conditional update guarded by the previous
// hash. Two concurrent refresh calls presenting the same token cannot both
// pass the guard.
func (r *UserRepository) RotateRefreshTokenHash(ctx context.Context, id uuid.UUID, oldHash, newHash []byte) error {
	query := `UPDATE users SET refresh_token_hash = $3, updated_at = NOW()
			  WHERE id = $1 AND refresh_token_hash = $2`

	tag, err := r.db.Exec(ctx, query, id, oldHash, newHash)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTokenMismatch
	}
	return nil
}

func (r *UserRepository) ClearRefreshTokenHash(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET refresh_token_hash = NULL, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear refresh token hash: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
