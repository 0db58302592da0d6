package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator, programmer and history endpoints
// onto the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/operations", h.Operations)
		r.Post("/four", h.Four)
		r.Post("/chain", h.Chain)
		r.Post("/{op}", h.Calculate)
	})

	r.Route("/programmer", func(r chi.Router) {
		r.Post("/convert", h.Convert)
		r.Post("/{op}", h.Programmer)
	})

	r.Route("/history", func(r chi.Router) {
		r.Get("/", h.ListHistory)
		r.Delete("/", h.ClearHistory)
		r.Post("/save", h.SaveHistory)
		r.Post("/load", h.LoadHistory)
	})
}
