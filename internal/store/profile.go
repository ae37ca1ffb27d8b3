package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/mission-reporter/internal/types"
)

// GetProfile retrieves the reporter profile. A missing row yields a zero
// profile; empty identity fields are valid values.
func (s *Store) GetProfile(ctx context.Context) (types.UserProfile, error) {
	var p types.UserProfile
	err := s.pool.QueryRow(ctx,
		`SELECT full_name, profession, cni, ppn FROM profile WHERE id = 1`,
	).Scan(&p.FullName, &p.Profession, &p.CNI, &p.PPN)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.UserProfile{}, nil
		}
		return types.UserProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// SaveProfile upserts the reporter profile.
func (s *Store) SaveProfile(ctx context.Context, p types.UserProfile) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO profile (id, full_name, profession, cni, ppn) VALUES (1, $1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET full_name = $1, profession = $2, cni = $3, ppn = $4`,
		p.FullName, p.Profession, p.CNI, p.PPN,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
