package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown
// (which needs the server handle and token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	oh := OpportunitiesHandler{d}
	mux.HandleFunc("/opportunities", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: oh.List,
	}))
	mux.HandleFunc("/opportunities/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    oh.GetByPath,    // /opportunities/{id}
		http.MethodDelete: oh.DeleteByPath, // /opportunities/{id}
	}))
	mux.HandleFunc("/seed", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: oh.Seed,
	}))

	sh := SavedHandler{d}
	mux.HandleFunc("/saved", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  sh.List,
		http.MethodPost: sh.Save,
	}))
	mux.HandleFunc("/saved/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: sh.DeleteByPath, // /saved/{id}
	}))

	ph := ProfileHandler{d}
	mux.HandleFunc("/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Get,
		http.MethodPut: ph.Put,
	}))

	ih := ImportHandler{d}
	mux.HandleFunc("/import", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ih.Run,
	}))

	ch := ConfigHandler{d}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	return mux
}
