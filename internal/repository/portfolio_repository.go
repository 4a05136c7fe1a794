package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/apperrors"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
)

// PortfolioRepository provides data access for the portfolio aggregate.
// Each user's assets, goals, and snapshot history are stored as JSON
// documents in a single row; the engine treats the store as a keyed blob
// store with full-document read-modify-write cycles.
//
// Writes are guarded by an optimistic version check: a save only succeeds
// when the stored version still matches the one that was loaded, so two
// overlapping cycles cannot silently overwrite each other.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided
// database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Load retrieves the aggregate for a user, creating and persisting an empty
// default portfolio when none exists yet.
func (r *PortfolioRepository) Load(ctx context.Context, userID string) (*model.Portfolio, error) {
	if userID == "" {
		return nil, apperrors.ErrEmptyID
	}

	query := `
          SELECT assets, goals, snapshot_history, version
          FROM portfolio
          WHERE user_id = ?
      `

	var assetsDoc, goalsDoc, historyDoc []byte
	var version int64

	err := r.db.QueryRowContext(ctx, query, userID).Scan(&assetsDoc, &goalsDoc, &historyDoc, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return r.create(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio: %w", err)
	}

	p := model.NewPortfolio(userID)
	p.Version = version

	if err := json.Unmarshal(assetsDoc, &p.Assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets document: %w", err)
	}
	if err := json.Unmarshal(goalsDoc, &p.Goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals document: %w", err)
	}
	if err := json.Unmarshal(historyDoc, &p.SnapshotHistory); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot history document: %w", err)
	}

	return p, nil
}

// Save writes the full aggregate back, bumping its version. Returns
// apperrors.ErrVersionConflict when the stored document moved since Load;
// callers retry the whole load-mutate-save cycle in that case.
func (r *PortfolioRepository) Save(ctx context.Context, p *model.Portfolio) error {
	assetsDoc, goalsDoc, historyDoc, err := marshalDocuments(p)
	if err != nil {
		return err
	}

	query := `
          UPDATE portfolio
          SET assets = ?, goals = ?, snapshot_history = ?,
              version = version + 1, updated_at = CURRENT_TIMESTAMP
          WHERE user_id = ? AND version = ?
      `

	result, err := r.db.ExecContext(ctx, query, assetsDoc, goalsDoc, historyDoc, p.UserID, p.Version)
	if err != nil {
		return fmt.Errorf("failed to update portfolio: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrVersionConflict
	}

	p.Version++
	return nil
}

// ListUserIDs returns every user with a stored portfolio. Used by the
// snapshot scheduler to iterate all tenants.
func (r *PortfolioRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT user_id FROM portfolio ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio users: %w", err)
	}
	defer rows.Close()

	userIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio user: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio users: %w", err)
	}

	return userIDs, nil
}

// create inserts an empty default portfolio. Two concurrent first accesses
// can race on the insert; the loser falls back to reading the winner's row.
func (r *PortfolioRepository) create(ctx context.Context, userID string) (*model.Portfolio, error) {
	query := `
          INSERT INTO portfolio (user_id)
          VALUES (?)
          ON CONFLICT(user_id) DO NOTHING
      `

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	var version int64
	err := r.db.QueryRowContext(ctx, "SELECT version FROM portfolio WHERE user_id = ?", userID).Scan(&version)
	if err != nil {
		return nil, fmt.Errorf("failed to read created portfolio: %w", err)
	}

	p := model.NewPortfolio(userID)
	p.Version = version
	return p, nil
}

func marshalDocuments(p *model.Portfolio) (assets, goals, history []byte, err error) {
	if assets, err = json.Marshal(p.Assets); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode assets document: %w", err)
	}
	if goals, err = json.Marshal(p.Goals); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode goals document: %w", err)
	}
	if history, err = json.Marshal(p.SnapshotHistory); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode snapshot history document: %w", err)
	}
	return assets, goals, history, nil
}
