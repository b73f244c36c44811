package packing

import "context"

// UseCase defines the business logic interface for packing sessions.
// Item operations on unknown item ids succeed without changing anything.
type UseCase interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (SessionOutput, error)
	Detail(ctx context.Context, sessionID string) (SessionOutput, error)
	Toggle(ctx context.Context, input ItemInput) (SessionOutput, error)
	StartEdit(ctx context.Context, input ItemInput) (SessionOutput, error)
	CommitEdit(ctx context.Context, input CommitInput) (SessionOutput, error)
	AddItem(ctx context.Context, sessionID string) (SessionOutput, error)
	DeleteItem(ctx context.Context, input ItemInput) (SessionOutput, error)
	Export(ctx context.Context, sessionID string) (ExportOutput, error)
	Close(ctx context.Context, sessionID string) error
}
