package usecase

import (
	"context"

	"travel-planner/pkg/llmprovider"
	pkgLog "travel-planner/pkg/log"
)

// Generator is the text generation dependency. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l   pkgLog.Logger
	llm Generator
}

// New creates a new itinerary UseCase instance.
func New(l pkgLog.Logger, llm Generator) *implUseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
	}
}
