package usecase

import (
	"github.com/vellum-dev/vellum/config"
	"github.com/vellum-dev/vellum/diagram"
)

func init() {
	diagram.Register(diagram.Definition{
		Type: DiagramType,
		New: func(cfg *config.Config) diagram.DB {
			return NewDB(cfg)
		},
	})
}
