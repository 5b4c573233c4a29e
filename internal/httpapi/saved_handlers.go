package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"scholarhunt-engine/internal/events"
	"scholarhunt-engine/internal/store"
)

type SavedHandler struct {
	Deps
}

func (h SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListSaved(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if items == nil {
		items = []store.SavedItem{}
	}
	writeJSON(w, items)
}

func (h SavedHandler) Save(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.ID) == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", `expected {"id": "..."}`)
		return
	}

	if _, err := store.GetOpportunity(r.Context(), h.DB, body.ID); err != nil {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such opportunity")
		return
	}

	added, err := store.Save(r.Context(), h.DB, body.ID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if added {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.Make(reqID, events.TypeSaved, map[string]any{"id": body.ID}))
	}
	writeJSON(w, map[string]any{"ok": true, "id": body.ID, "added": added})
}

func (h SavedHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/saved/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid opportunity id")
		return
	}

	removed, err := store.Unsave(r.Context(), h.DB, id)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if removed {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.Make(reqID, events.TypeUnsaved, map[string]any{"id": id}))
	}
	writeJSON(w, map[string]any{"ok": true, "id": id, "removed": removed})
}
