package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/coniugo/internal/config"
	"github.com/saulo-duarte/coniugo/internal/middlewares"
	"github.com/saulo-duarte/coniugo/internal/quiz"
	"github.com/saulo-duarte/coniugo/internal/static"
)

type RouterConfig struct {
	QuizHandler   *quiz.Handler
	StaticHandler *static.Handler
	VerbCount     int
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"verbs":  cfg.VerbCount,
		})
	})

	r.Mount("/static", static.Routes(cfg.StaticHandler))
	r.Mount("/", quiz.Routes(cfg.QuizHandler))
	return r
}
