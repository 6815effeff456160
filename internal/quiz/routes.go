package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.GetHead)

	r.Get("/", h.NewRound)
	r.Post("/", h.SubmitAnswer)
	return r
}
