package handlers

import (
	"net/http"
)

// NewRouter wires every endpoint. Kept separate from main so handler tests
// can stand up the full route table.
func NewRouter(uh *UserHandler, ph *ProfileHandler, poh *PostHandler, mth *MemberTypeHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Users
	mux.HandleFunc("GET /api/v1/users", uh.List)
	mux.HandleFunc("POST /api/v1/users", uh.Create)
	mux.HandleFunc("GET /api/v1/users/{id}", uh.Get)
	mux.HandleFunc("PATCH /api/v1/users/{id}", uh.Update)
	mux.HandleFunc("DELETE /api/v1/users/{id}", uh.Delete)
	mux.HandleFunc("POST /api/v1/users/{id}/subscribe", uh.Subscribe)
	mux.HandleFunc("POST /api/v1/users/{id}/unsubscribe", uh.Unsubscribe)

	// Profiles
	mux.HandleFunc("GET /api/v1/profiles", ph.List)
	mux.HandleFunc("POST /api/v1/profiles", ph.Create)
	mux.HandleFunc("GET /api/v1/profiles/{id}", ph.Get)
	mux.HandleFunc("PATCH /api/v1/profiles/{id}", ph.Update)
	mux.HandleFunc("DELETE /api/v1/profiles/{id}", ph.Delete)

	// Posts
	mux.HandleFunc("GET /api/v1/posts", poh.List)
	mux.HandleFunc("POST /api/v1/posts", poh.Create)
	mux.HandleFunc("GET /api/v1/posts/{id}", poh.Get)
	mux.HandleFunc("PATCH /api/v1/posts/{id}", poh.Update)
	mux.HandleFunc("DELETE /api/v1/posts/{id}", poh.Delete)

	// Member types (reference data, PATCH only)
	mux.HandleFunc("GET /api/v1/member-types", mth.List)
	mux.HandleFunc("GET /api/v1/member-types/{id}", mth.Get)
	mux.HandleFunc("PATCH /api/v1/member-types/{id}", mth.Update)

	return mux
}
