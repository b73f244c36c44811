package http

import (
	"travel-planner/internal/packing"
	"travel-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc packing.UseCase
}

// New creates a new HTTP handler for packing sessions.
func New(l log.Logger, uc packing.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
