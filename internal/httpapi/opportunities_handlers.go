package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"scholarhunt-engine/internal/browse"
	"scholarhunt-engine/internal/domain"
	"scholarhunt-engine/internal/keywords"
	"scholarhunt-engine/internal/store"
)

type OpportunitiesHandler struct {
	Deps
}

// ListItem is one listing as the UI renders it: the record plus its
// compatibility score and extracted keywords.
type ListItem struct {
	domain.Opportunity
	Score    int      `json:"score"`
	Keywords []string `json:"keywords"`
	Saved    bool     `json:"saved"`
}

// List runs the browse pipeline over the stored set:
// filter -> score fill -> sort.
func (h OpportunitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := h.cfg()
	q := r.URL.Query()

	opps, err := store.ListOpportunities(r.Context(), h.DB, cfg.Browse.PageLimit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	filterCfg := domain.FilterConfig{
		FullyFunded:   parseBool(q.Get("fullyFunded")),
		International: parseBool(q.Get("international")),
		HasDeadline:   parseBool(q.Get("hasDeadline")),
		HasSupervisor: parseBool(q.Get("hasSupervisor")),
		Subjects:      domain.SplitList(q.Get("subjects")),
	}
	filtered := browse.Filter(opps, q.Get("q"), filterCfg)

	profile, err := store.GetProfile(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	h.Scores.Fill(filtered, profile)

	sortKey := q.Get("sort")
	if sortKey == "" {
		sortKey = cfg.Browse.DefaultSort
	}
	sorted := browse.Sort(filtered, sortKey, h.Scores)

	savedIDs, err := savedIDSet(r, h)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	items := make([]ListItem, 0, len(sorted))
	for i := range sorted {
		items = append(items, ListItem{
			Opportunity: sorted[i],
			Score:       h.Scores.Get(sorted[i].ID),
			Keywords:    keywords.Extract(&sorted[i]),
			Saved:       savedIDs[sorted[i].ID],
		})
	}
	writeJSON(w, items)
}

func (h OpportunitiesHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/opportunities/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid opportunity id")
		return
	}

	opp, err := store.GetOpportunity(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such opportunity")
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	profile, err := store.GetProfile(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	h.Scores.Fill([]domain.Opportunity{opp}, profile)

	saved, err := store.IsSaved(r.Context(), h.DB, id)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	writeJSON(w, ListItem{
		Opportunity: opp,
		Score:       h.Scores.Get(opp.ID),
		Keywords:    keywords.Extract(&opp),
		Saved:       saved,
	})
}

func (h OpportunitiesHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/opportunities/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid opportunity id")
		return
	}

	if err := store.DeleteOpportunity(r.Context(), h.DB, id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "id": id})
}

func (h OpportunitiesHandler) Seed(w http.ResponseWriter, r *http.Request) {
	opp, err := store.SeedOpportunity(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	writeJSON(w, opp)
}

func savedIDSet(r *http.Request, h OpportunitiesHandler) (map[string]bool, error) {
	saved, err := store.ListSaved(r.Context(), h.DB)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(saved))
	for _, s := range saved {
		ids[s.Opportunity.ID] = true
	}
	return ids, nil
}
