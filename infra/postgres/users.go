package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CreateOrGetUser, kullanıcıyı adıyla bulur; yoksa yeni bir kayıt açar.
// İki istemcinin aynı anda aynı adla kayıt olması ON CONFLICT ile çözülür.
func (r *Repository) CreateOrGetUser(ctx context.Context, username string) (domain.User, error) {
	query := `
		INSERT INTO users (username)
		VALUES ($1)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, username, wins, losses, created_at
	`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Wins,
		&user.Losses,
		&user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "invalid input") {
			return domain.User{}, fmt.Errorf("%w: invalid username", domain.ErrInvalidInput)
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser, kullanıcıyı kimliğiyle getirir.
func (r *Repository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	query := `
		SELECT id, username, wins, losses, created_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.Wins,
		&user.Losses,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// RecordGameResult, biten oyunun sonucunu tek bir transaction içinde işler:
// kazanan bir galibiyet, kaybedenler birer mağlubiyet alır.
func (r *Repository) RecordGameResult(ctx context.Context, winnerUserID uuid.UUID, loserUserIDs []uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	winQuery := `
		UPDATE users SET wins = wins + 1 WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, winQuery, winnerUserID); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	lossQuery := `
		UPDATE users SET losses = losses + 1 WHERE id = ANY($1)
	`
	if _, err := tx.ExecContext(ctx, lossQuery, pq.Array(loserIDsParam(loserUserIDs))); err != nil {
		return fmt.Errorf("failed to record losses: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func loserIDsParam(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
