package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
)

// ProfileRepo persists profile records. It implements profile.Store.
type ProfileRepo struct {
	db *sql.DB
}

// Save upserts the record keyed by student id.
func (r *ProfileRepo) Save(ctx context.Context, rec *profile.Record) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal profile record: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (student_id, record, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(student_id) DO UPDATE SET
			record = excluded.record,
			updated_at = excluded.updated_at`,
		rec.StudentID, string(doc), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", rec.StudentID, err)
	}
	return nil
}

// Load fetches the record for a student. Returns (nil, nil) when no
// record exists.
func (r *ProfileRepo) Load(ctx context.Context, studentID string) (*profile.Record, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		`SELECT record FROM profiles WHERE student_id = ?`, studentID,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", studentID, err)
	}

	var rec profile.Record
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", studentID, err)
	}
	return &rec, nil
}

// Delete removes a student's record. Missing records are not an error.
func (r *ProfileRepo) Delete(ctx context.Context, studentID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM profiles WHERE student_id = ?`, studentID,
	); err != nil {
		return fmt.Errorf("delete profile %s: %w", studentID, err)
	}
	return nil
}

// List returns all stored student ids in sorted order.
func (r *ProfileRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT student_id FROM profiles ORDER BY student_id`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan student id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
