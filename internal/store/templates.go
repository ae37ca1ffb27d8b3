package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/mission-reporter/internal/types"
)

// SaveTemplate inserts a template descriptor and returns its id.
func (s *Store) SaveTemplate(ctx context.Context, tpl types.TemplateDescriptor) (string, error) {
	id := tpl.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO templates (id, name, data, created_at) VALUES ($1, $2, $3, NOW())`,
		id, tpl.Name, tpl.Data,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save template: %w", err)
	}
	return id, nil
}

// ListTemplates retrieves all custom template descriptors. The reserved
// "default" id never appears here; it has no stored descriptor.
func (s *Store) ListTemplates(ctx context.Context) ([]types.TemplateDescriptor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, data FROM templates ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var tpls []types.TemplateDescriptor
	for rows.Next() {
		var tpl types.TemplateDescriptor
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Data); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		tpls = append(tpls, tpl)
	}
	return tpls, nil
}

// DeleteTemplate removes a template. Deleting the active template resets the
// active selection to the default.
func (s *Store) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("template not found: %s", id)
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE settings SET active_template_id = $1 WHERE active_template_id = $2`,
		types.DefaultTemplateID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to reset active template: %w", err)
	}
	return nil
}

// SetActiveTemplate records which template renders use.
func (s *Store) SetActiveTemplate(ctx context.Context, id string) error {
	if id != types.DefaultTemplateID {
		var exists bool
		err := s.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM templates WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check template: %w", err)
		}
		if !exists {
			return fmt.Errorf("template not found: %s", id)
		}
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO settings (id, active_template_id) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET active_template_id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to set active template: %w", err)
	}
	return nil
}

// GetExportConfiguration assembles the template selection used by renders.
// A dangling active id is normalized back to the default.
func (s *Store) GetExportConfiguration(ctx context.Context) (types.ExportConfiguration, error) {
	cfg := types.ExportConfiguration{ActiveTemplateID: types.DefaultTemplateID}

	tpls, err := s.ListTemplates(ctx)
	if err != nil {
		return cfg, err
	}
	cfg.CustomTemplates = tpls

	var active string
	err = s.pool.QueryRow(ctx,
		`SELECT active_template_id FROM settings WHERE id = 1`).Scan(&active)
	if err != nil && err != pgx.ErrNoRows {
		return cfg, fmt.Errorf("failed to get active template: %w", err)
	}
	if active != "" {
		cfg.ActiveTemplateID = active
	}
	cfg.Normalize()
	return cfg, nil
}
