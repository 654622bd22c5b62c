package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterOptions carries the cross-cutting pieces main wires around the
// handlers. Nil members are skipped.
type RouterOptions struct {
	// Authenticate guards every route except health, metrics and the API description.
	Authenticate func(http.Handler) http.Handler
	// GenerationLimit throttles the two routes that call the model.
	GenerationLimit func(http.Handler) http.Handler
	// Metrics serves GET /metrics.
	Metrics http.Handler
	// OpenAPI is served verbatim at GET /openapi.yaml.
	OpenAPI []byte
}

// NewRouter registers every endpoint of s on a chi router.
func NewRouter(s *Server, opts RouterOptions) chi.Router {
	limit := opts.GenerationLimit
	if limit == nil {
		limit = passthrough
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	if opts.OpenAPI != nil {
		r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(opts.OpenAPI)
		})
	}

	r.Group(func(r chi.Router) {
		if opts.Authenticate != nil {
			r.Use(opts.Authenticate)
		}

		r.Route("/itineraries", func(r chi.Router) {
			r.Get("/", s.ListItineraries)
			r.With(limit).Post("/", s.GenerateItinerary)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetItinerary)
				r.Patch("/", s.UpdateItinerary)
				r.Delete("/", s.DeleteItinerary)
				r.Get("/export", s.ExportItinerary)
				r.Post("/share", s.ShareItinerary)

				r.Get("/days", s.ListDays)
				r.Post("/days", s.CreateDay)
				r.Route("/days/{dayID}", func(r chi.Router) {
					r.Get("/", s.GetDay)
					r.Patch("/", s.UpdateDay)
					r.Delete("/", s.DeleteDay)
					r.Post("/activities", s.AddActivity)
					r.Put("/activities", s.ReorderActivities)
					r.Put("/activities/{index}", s.UpdateActivity)
					r.Delete("/activities/{index}", s.DeleteActivity)
				})

				r.Get("/packing-list", s.GetPackingList)
				r.With(limit).Post("/packing-list", s.GeneratePackingList)
				r.Post("/packing-list/items", s.AddPackingItem)
				r.Patch("/packing-list/items/{itemID}", s.UpdatePackingItem)
				r.Delete("/packing-list/items/{itemID}", s.DeletePackingItem)
			})
		})

		r.Get("/me/profile", s.GetProfile)
		r.Patch("/me/profile", s.UpdateProfile)
	})

	return r
}

func passthrough(next http.Handler) http.Handler { return next }
