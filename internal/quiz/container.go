package quiz

import (
	"github.com/saulo-duarte/coniugo/internal/config"
	"github.com/saulo-duarte/coniugo/internal/verb"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(cfg config.Config, catalog *verb.Catalog) *QuizContainer {
	codec := NewCodec()
	if cfg.StateSecret != "" {
		codec = NewSignedCodec([]byte(cfg.StateSecret))
	}

	service := NewService(codec, NewGenerator(catalog))
	handler := NewHandler(service, NewRenderer(codec), cfg.MaxFormBytes)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
