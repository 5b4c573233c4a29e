package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scholarhunt-engine/internal/domain"
)

// SavedItem is one bookmarked opportunity plus when it was saved.
type SavedItem struct {
	Opportunity domain.Opportunity `json:"opportunity"`
	SavedAt     string             `json:"savedAt"`
}

// Save bookmarks an opportunity. Saving twice is a no-op; saving an id
// that doesn't exist fails the foreign key and surfaces as an error.
func Save(ctx context.Context, db *sql.DB, opportunityID string) (added bool, err error) {
	_, err = db.ExecContext(ctx, `
INSERT OR IGNORE INTO saved (opportunity_id, saved_at) VALUES (?, ?);`,
		opportunityID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("save opportunity: %w", err)
	}

	var changes int
	if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

func Unsave(ctx context.Context, db *sql.DB, opportunityID string) (removed bool, err error) {
	res, err := db.ExecContext(ctx, `DELETE FROM saved WHERE opportunity_id = ?;`, opportunityID)
	if err != nil {
		return false, fmt.Errorf("unsave opportunity: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func ListSaved(ctx context.Context, db *sql.DB) ([]SavedItem, error) {
	rows, err := db.QueryContext(ctx, `
SELECT o.id, o.title, o.university, o.department, o.description,
       o.subjects, o.requirements, o.deadline, o.posted_date,
       o.fully_funded, o.international, o.supervisor, s.saved_at
FROM saved s
JOIN opportunities o ON o.id = s.opportunity_id
ORDER BY s.saved_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedItem
	for rows.Next() {
		var item SavedItem
		o := &item.Opportunity
		var subjects, requirements string
		var fullyFunded, international int
		if err := rows.Scan(
			&o.ID, &o.Title, &o.University, &o.Department, &o.Description,
			&subjects, &requirements, &o.Deadline, &o.PostedDate,
			&fullyFunded, &international, &o.Supervisor, &item.SavedAt,
		); err != nil {
			return nil, err
		}
		unmarshalList(subjects, &o.Subjects)
		unmarshalList(requirements, &o.Requirements)
		o.FullyFunded = fullyFunded != 0
		o.International = international != 0
		out = append(out, item)
	}
	return out, rows.Err()
}

func IsSaved(ctx context.Context, db *sql.DB, opportunityID string) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx,
		`SELECT 1 FROM saved WHERE opportunity_id = ? LIMIT 1;`, opportunityID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}
