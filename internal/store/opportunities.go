package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scholarhunt-engine/internal/domain"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// UpsertOpportunity inserts a listing, ignoring duplicates by id.
// Returns whether a new row was actually added.
func UpsertOpportunity(ctx context.Context, db *sql.DB, o domain.Opportunity) (added bool, err error) {
	subjects, _ := json.Marshal(emptyIfNil(o.Subjects))
	requirements, _ := json.Marshal(emptyIfNil(o.Requirements))

	_, err = db.ExecContext(ctx, `
INSERT OR IGNORE INTO opportunities
  (id, title, university, department, description, subjects, requirements,
   deadline, posted_date, fully_funded, international, supervisor, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		o.ID, o.Title, o.University, o.Department, o.Description,
		string(subjects), string(requirements),
		o.Deadline, o.PostedDate, boolInt(o.FullyFunded), boolInt(o.International),
		o.Supervisor, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert opportunity: %w", err)
	}

	var changes int
	if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

const opportunityColumns = `id, title, university, department, description,
subjects, requirements, deadline, posted_date, fully_funded, international, supervisor`

func ListOpportunities(ctx context.Context, db *sql.DB, limit int) ([]domain.Opportunity, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := db.QueryContext(ctx, `
SELECT `+opportunityColumns+`
FROM opportunities
ORDER BY created_at DESC, id
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func GetOpportunity(ctx context.Context, db *sql.DB, id string) (domain.Opportunity, error) {
	row := db.QueryRowContext(ctx, `
SELECT `+opportunityColumns+`
FROM opportunities
WHERE id = ?;`, id)

	o, err := scanOpportunity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Opportunity{}, ErrNotFound
	}
	return o, err
}

func DeleteOpportunity(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM opportunities WHERE id = ?;`, id)
	return err
}

// CleanupExpired drops listings whose deadline passed more than
// retentionMonths ago. Listings without a deadline are kept.
func CleanupExpired(db *sql.DB, retentionMonths int) (deleted int64, err error) {
	if retentionMonths <= 0 {
		return 0, nil
	}
	res, err := db.Exec(fmt.Sprintf(`
DELETE FROM opportunities
WHERE deadline != ''
  AND deadline < date('now', '-%d months');`, retentionMonths))
	if err != nil {
		return 0, fmt.Errorf("cleanup expired: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// SeedOpportunity inserts a fixed dev listing so a fresh UI has something
// to render.
func SeedOpportunity(ctx context.Context, db *sql.DB) (domain.Opportunity, error) {
	o := domain.Opportunity{
		ID:          "seed-001",
		Title:       "PhD Studentship in Distributed Systems Verification",
		University:  "Example University",
		Department:  "Computer Science",
		Description: "Formal verification of consensus protocols under partial synchrony.",
		Subjects:    domain.StringList{"Distributed Systems", "Formal Methods"},
		Requirements: domain.StringList{
			"MSc in Computer Science or related discipline",
		},
		Deadline:      time.Now().UTC().AddDate(0, 2, 0).Format("2006-01-02"),
		PostedDate:    time.Now().UTC().Format("2006-01-02"),
		FullyFunded:   true,
		International: true,
		Supervisor:    "Dr. A. N. Other",
	}
	if _, err := UpsertOpportunity(ctx, db, o); err != nil {
		return domain.Opportunity{}, err
	}
	return o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOpportunity(row rowScanner) (domain.Opportunity, error) {
	var o domain.Opportunity
	var subjects, requirements string
	var fullyFunded, international int

	if err := row.Scan(
		&o.ID, &o.Title, &o.University, &o.Department, &o.Description,
		&subjects, &requirements, &o.Deadline, &o.PostedDate,
		&fullyFunded, &international, &o.Supervisor,
	); err != nil {
		return domain.Opportunity{}, err
	}

	unmarshalList(subjects, &o.Subjects)
	unmarshalList(requirements, &o.Requirements)
	o.FullyFunded = fullyFunded != 0
	o.International = international != 0
	return o, nil
}

func unmarshalList(s string, dst *domain.StringList) {
	_ = json.Unmarshal([]byte(s), dst)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func emptyIfNil(l domain.StringList) domain.StringList {
	if l == nil {
		return domain.StringList{}
	}
	return l
}
