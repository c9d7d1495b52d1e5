package app

import (
	"inversion-spec/internal/adapters"
	"inversion-spec/internal/core"
	"inversion-spec/internal/ports"
)

type Service struct {
	Documents ports.DocumentSourcePort
	Engine    core.Engine
}

func NewService() Service {
	return Service{
		Documents: adapters.NewDocumentFileAdapter(),
		Engine:    core.NewEngine(),
	}
}
