package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the page and live routes
func RegisterRoutes(r *chi.Mux, h *Handlers) {
	r.Get("/", h.LandingPage)
	r.Head("/", h.LandingPage)
	r.Get("/health", h.Health)

	r.Route("/live", func(r chi.Router) {
		r.Get("/stream", h.Stream)
		r.Post("/carousel/next", h.CarouselNext)
		r.Post("/carousel/prev", h.CarouselPrev)
		r.Post("/carousel/jump/{index}", h.CarouselJump)
		r.Post("/reveal/{id}", h.Reveal)
	})
}
