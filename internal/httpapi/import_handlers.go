package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"scholarhunt-engine/internal/domain"
	"scholarhunt-engine/internal/events"
	"scholarhunt-engine/internal/store"
)

type ImportHandler struct {
	Deps
}

// Run accepts a JSON array of opportunity records (the shape older UIs
// exported from client storage) and upserts them. Records without an id
// get one assigned so they stay addressable and scoreable.
func (h ImportHandler) Run(w http.ResponseWriter, r *http.Request) {
	var incoming []domain.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "expected a JSON array of opportunities: "+err.Error())
		return
	}

	added := 0
	skipped := 0
	for _, opp := range incoming {
		if strings.TrimSpace(opp.Title) == "" {
			skipped++
			continue
		}
		if strings.TrimSpace(opp.ID) == "" {
			opp.ID = uuid.NewString()
		}
		ok, err := store.UpsertOpportunity(r.Context(), h.DB, opp)
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
			return
		}
		if ok {
			added++
		}
	}

	if added > 0 {
		// the browsable set changed; any cached list scores may refer to
		// ids that are about to be re-ranked
		h.Scores.Reset()
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.Make(reqID, events.TypeImported, map[string]any{"added": added}))
	}

	writeJSON(w, map[string]any{"ok": true, "added": added, "skipped": skipped, "received": len(incoming)})
}
