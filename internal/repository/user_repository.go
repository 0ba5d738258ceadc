package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns the Postgres-backed profile store.
func NewUserRepository(pool *pgxpool.Pool) ProfileStore {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	const query = `
        SELECT id, username, name, nivel, must_change_password, created_at, updated_at
        FROM user_profiles WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	const query = `
        SELECT id, username, name, nivel, must_change_password, created_at, updated_at
        FROM user_profiles WHERE username=$1`
	return r.fetchSingle(ctx, query, username)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.Username,
		&profile.Name,
		&profile.Nivel,
		&profile.MustChangePassword,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.UserProfile, error) {
	const query = `
        SELECT id, username, name, nivel, must_change_password, created_at, updated_at
        FROM user_profiles ORDER BY username ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.UserProfile
	for rows.Next() {
		var profile domain.UserProfile
		if err := rows.Scan(
			&profile.ID,
			&profile.Username,
			&profile.Name,
			&profile.Nivel,
			&profile.MustChangePassword,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, profile)
	}
	return result, rows.Err()
}

func (r *userRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	const query = `
        INSERT INTO user_profiles (id, username, name, nivel, must_change_password)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (id) DO UPDATE SET
            username=EXCLUDED.username,
            name=EXCLUDED.name,
            nivel=EXCLUDED.nivel,
            must_change_password=EXCLUDED.must_change_password,
            updated_at=NOW()
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.Username,
		profile.Name,
		profile.Nivel,
		profile.MustChangePassword,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM user_profiles WHERE id=$1`, id)
	return err
}

type credentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository returns the Postgres-backed credential store.
func NewCredentialRepository(pool *pgxpool.Pool) CredentialStore {
	return &credentialRepository{pool: pool}
}

func (r *credentialRepository) GetHash(ctx context.Context, username string) (string, error) {
	var hash string
	err := r.pool.QueryRow(ctx, `SELECT password_hash FROM credentials WHERE username=$1`, username).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return hash, err
}

func (r *credentialRepository) SetHash(ctx context.Context, username, hash string) error {
	const query = `
        INSERT INTO credentials (username, password_hash)
        VALUES ($1,$2)
        ON CONFLICT (username) DO UPDATE SET password_hash=EXCLUDED.password_hash, updated_at=NOW()`
	_, err := r.pool.Exec(ctx, query, username, hash)
	return err
}

func (r *credentialRepository) Delete(ctx context.Context, username string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM credentials WHERE username=$1`, username)
	return err
}
