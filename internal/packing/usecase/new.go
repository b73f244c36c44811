package usecase

import (
	"context"

	"travel-planner/internal/packing"
	"travel-planner/internal/session"
	"travel-planner/pkg/llmprovider"
	pkgLog "travel-planner/pkg/log"
)

// Generator is the text generation dependency. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      Generator
	sessions *session.Registry
	ids      packing.IDSource
}

// New creates a new packing UseCase instance.
func New(l pkgLog.Logger, llm Generator, sessions *session.Registry, ids packing.IDSource) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		sessions: sessions,
		ids:      ids,
	}
}
