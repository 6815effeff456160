package container

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/coniugo/internal/config"
	"github.com/saulo-duarte/coniugo/internal/quiz"
	"github.com/saulo-duarte/coniugo/internal/router"
	"github.com/saulo-duarte/coniugo/internal/static"
	"github.com/saulo-duarte/coniugo/internal/verb"
)

type Container struct {
	Config        config.Config
	VerbContainer *verb.VerbContainer
	QuizContainer *quiz.QuizContainer
	StaticHandler *static.Handler
}

// New loads the configuration and the verb catalog. A catalog that cannot be loaded
// aborts the process: the quiz cannot run without verbs.
func New() *Container {
	cfg := config.Load()
	config.InitLogger(cfg)

	ctx := context.Background()
	verbContainer, err := verb.NewVerbContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to load verb catalog: %v", err)
	}

	staticHandler, err := static.NewHandler(cfg.StaticDir)
	if err != nil {
		log.Fatalf("failed to set up static assets: %v", err)
	}

	return &Container{
		Config:        cfg,
		VerbContainer: verbContainer,
		QuizContainer: quiz.NewQuizContainer(cfg, verbContainer.Catalog),
		StaticHandler: staticHandler,
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		QuizHandler:   c.QuizContainer.Handler,
		StaticHandler: c.StaticHandler,
		VerbCount:     c.VerbContainer.Catalog.Len(),
	})
}
