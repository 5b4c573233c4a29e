package httpapi

import (
	"encoding/json"
	"net/http"

	"scholarhunt-engine/internal/domain"
	"scholarhunt-engine/internal/events"
	"scholarhunt-engine/internal/store"
)

type ProfileHandler struct {
	Deps
}

func (h ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := store.GetProfile(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if p == nil {
		WriteError(w, r, http.StatusNotFound, "no_profile", "no profile has been created yet")
		return
	}
	writeJSON(w, p)
}

func (h ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming domain.Profile
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "invalid JSON: "+err.Error())
		return
	}

	saved, err := store.PutProfile(r.Context(), h.DB, incoming)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	// cached compatibility scores were computed against the old profile
	h.Scores.Reset()

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.Make(reqID, events.TypeProfileUpdate, map[string]any{"id": saved.ID}))
	writeJSON(w, saved)
}
