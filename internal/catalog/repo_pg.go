package catalog

import (
	"context"
	"database/sql"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ListDiagnostics returns all catalog items in catalog order.
func (r *PGRepo) ListDiagnostics(ctx context.Context) ([]DiagnosticItem, error) {
	const query = `
SELECT id, profile_id, title, statement_text, response_guidance, eee_package,
       tier1, tier2, tier3, tier4, tags, position
FROM diagnostic_statements
ORDER BY position, id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DiagnosticItem
	for rows.Next() {
		var item DiagnosticItem
		var tier1, tier2, tier3, tier4 bool
		var tags string
		if err := rows.Scan(
			&item.ID,
			&item.ProfileID,
			&item.Title,
			&item.Statement,
			&item.ResponseGuidance,
			&item.EEEPackage,
			&tier1,
			&tier2,
			&tier3,
			&tier4,
			&tags,
			&item.Position,
		); err != nil {
			return nil, err
		}
		item.Tiers = tiersFromFlags(tier1, tier2, tier3, tier4)
		item.Tags = splitTags(tags)
		out = append(out, item)
	}
	return out, rows.Err()
}

// ListResponseKeys returns the categorical answer labels in ID order.
func (r *PGRepo) ListResponseKeys(ctx context.Context) ([]ResponseKey, error) {
	const query = `SELECT id, label, description FROM response_keys ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResponseKey
	for rows.Next() {
		var key ResponseKey
		if err := rows.Scan(&key.ID, &key.Label, &key.Description); err != nil {
			return nil, err
		}
		out = append(out, key)
	}
	return out, rows.Err()
}

// ListTags returns the known tag names.
func (r *PGRepo) ListTags(ctx context.Context) ([]string, error) {
	const query = `SELECT name FROM tags ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func tiersFromFlags(t1, t2, t3, t4 bool) []int {
	var tiers []int
	if t1 {
		tiers = append(tiers, 1)
	}
	if t2 {
		tiers = append(tiers, 2)
	}
	if t3 {
		tiers = append(tiers, 3)
	}
	if t4 {
		tiers = append(tiers, 4)
	}
	return tiers
}

func splitTags(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var _ Repo = (*PGRepo)(nil)
