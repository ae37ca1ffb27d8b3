package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/mission-reporter/internal/types"
)

// CreateMission inserts a mission record and returns its id.
func (s *Store) CreateMission(ctx context.Context, m types.MissionRecord) (string, error) {
	id := m.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO missions (id, title, location, date, finish_date, start_time, finish_time, notes, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NOW())`,
		id, m.Title, m.Location, m.Date, m.FinishDate, m.StartTime, m.FinishTime, m.Notes,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create mission: %w", err)
	}
	return id, nil
}

// GetMission retrieves one mission by id. Returns nil when not found.
func (s *Store) GetMission(ctx context.Context, id string) (*types.MissionRecord, error) {
	var m types.MissionRecord
	var finishDate *string
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, location, date, finish_date, start_time, finish_time, notes, created_at
		 FROM missions WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Title, &m.Location, &m.Date, &finishDate, &m.StartTime, &m.FinishTime, &m.Notes, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	if finishDate != nil {
		m.FinishDate = *finishDate
	}
	return &m, nil
}

// ListMissions retrieves missions ordered by date. An empty range lists all.
func (s *Store) ListMissions(ctx context.Context, rng *types.DateRange) ([]types.MissionRecord, error) {
	query := `SELECT id, title, location, date, finish_date, start_time, finish_time, notes, created_at
		FROM missions`
	args := []any{}
	if rng != nil {
		query += ` WHERE date >= $1 AND date <= $2`
		args = append(args, rng.Start, rng.End)
	}
	query += ` ORDER BY date ASC, created_at ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	var missions []types.MissionRecord
	for rows.Next() {
		var m types.MissionRecord
		var finishDate *string
		if err := rows.Scan(&m.ID, &m.Title, &m.Location, &m.Date, &finishDate, &m.StartTime, &m.FinishTime, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		if finishDate != nil {
			m.FinishDate = *finishDate
		}
		missions = append(missions, m)
	}
	return missions, nil
}

// DeleteMission deletes a mission by id.
func (s *Store) DeleteMission(ctx context.Context, id string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM missions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("mission not found: %s", id)
	}
	return nil
}
