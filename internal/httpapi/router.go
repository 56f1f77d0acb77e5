package httpapi

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strconv"

	"github.com/MyelinBots/catmanager-go/internal/cat"
	"github.com/MyelinBots/catmanager-go/internal/healthcheck"
	"github.com/MyelinBots/catmanager-go/internal/roster"
	"github.com/MyelinBots/catmanager-go/internal/services/avatar"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type Options struct {
	Roster  *roster.Roster
	Avatars *avatar.Picker // nil disables avatars

	// AllowedOrigins defaults to any origin.
	AllowedOrigins []string
}

type catResponse struct {
	Index int         `json:"index"`
	ID    string      `json:"id"`
	Cat   cat.CatInfo `json:"cat"`
}

type listResponse struct {
	Count int           `json:"count"`
	Max   int           `json:"max"`
	Cats  []catResponse `json:"cats"`
}

// NewRouter serves a read-only view of the shelter.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", healthcheck.HealthCheckHandler())

	r.Route("/cats", func(cr chi.Router) {
		cr.Get("/", listCatsHandler(opts.Roster))
		cr.Get("/{index}", getCatHandler(opts.Roster))
		cr.Get("/{index}/avatar", avatarHandler(opts.Roster, opts.Avatars))
	})

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

func listCatsHandler(rs *roster.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		entries := rs.List()
		resp := listResponse{Count: len(entries), Max: rs.Cap(), Cats: make([]catResponse, 0, len(entries))}
		for i, e := range entries {
			resp.Cats = append(resp.Cats, toResponse(i+1, e))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func getCatHandler(rs *roster.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := parseIndex(w, r)
		if !ok {
			return
		}
		e, err := rs.Get(index)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(index, e))
	}
}

func avatarHandler(rs *roster.Roster, picker *avatar.Picker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := parseIndex(w, r)
		if !ok {
			return
		}
		if _, err := rs.Get(index); err != nil {
			writeError(w, err)
			return
		}
		if picker == nil {
			writeError(w, avatar.ErrNoAvatars)
			return
		}
		path, err := picker.Random()
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, path)
	}
}

func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "index must be a number", http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

func toResponse(index int, e roster.Entry) catResponse {
	return catResponse{Index: index, ID: e.ID.String(), Cat: e.Cat}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roster.ErrNotFound),
		errors.Is(err, avatar.ErrNoAvatars),
		errors.Is(err, fs.ErrNotExist):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("httpapi: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("httpapi: encode response: %v", err)
	}
}
