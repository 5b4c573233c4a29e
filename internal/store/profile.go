package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scholarhunt-engine/internal/domain"

	"github.com/google/uuid"
)

// GetProfile returns the local user profile, or (nil, nil) when none has
// been created yet; scoring then falls back to the profile-less variant.
func GetProfile(ctx context.Context, db *sql.DB) (*domain.Profile, error) {
	var userID, interests, sop string
	err := db.QueryRowContext(ctx,
		`SELECT user_id, interests, sop FROM profile WHERE row_id = 1;`,
	).Scan(&userID, &interests, &sop)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p := &domain.Profile{ID: userID, SOP: sop}
	unmarshalList(interests, &p.Interests)
	return p, nil
}

// PutProfile writes the single local profile row, assigning an id on
// first write so scores stay reproducible for this install.
func PutProfile(ctx context.Context, db *sql.DB, p domain.Profile) (domain.Profile, error) {
	if p.ID == "" {
		existing, err := GetProfile(ctx, db)
		if err != nil {
			return domain.Profile{}, err
		}
		if existing != nil && existing.ID != "" {
			p.ID = existing.ID
		} else {
			p.ID = uuid.NewString()
		}
	}

	interests, _ := json.Marshal(emptyIfNil(p.Interests))
	_, err := db.ExecContext(ctx, `
INSERT INTO profile (row_id, user_id, interests, sop, updated_at)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT (row_id) DO UPDATE SET
  user_id = excluded.user_id,
  interests = excluded.interests,
  sop = excluded.sop,
  updated_at = excluded.updated_at;`,
		p.ID, string(interests), p.SOP, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("put profile: %w", err)
	}
	return p, nil
}
