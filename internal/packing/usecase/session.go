package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-planner/internal/checklist"
	"travel-planner/internal/packing"
	"travel-planner/internal/session"
	"travel-planner/pkg/llmprovider"
)

// CreateSession extracts a checklist from the given or generated text and registers it.
func (uc *implUseCase) CreateSession(ctx context.Context, input packing.CreateSessionInput) (packing.SessionOutput, error) {
	destination := strings.TrimSpace(input.Destination)
	if destination == "" {
		destination = packing.DefaultDestination
	}

	if strings.TrimSpace(input.Markdown) != "" {
		entry := uc.sessions.Open(ctx, destination, checklist.ImportMarkdown(input.Markdown, uc.ids))
		return newSessionOutput(entry), nil
	}

	raw := input.RawText
	if strings.TrimSpace(raw) == "" {
		generated, err := uc.generate(ctx, destination)
		if err != nil {
			return packing.SessionOutput{}, err
		}
		raw = generated
	}

	items := packing.Extract(raw, uc.ids)
	entry := uc.sessions.Open(ctx, destination, checklist.NewStore(items, uc.ids))

	return newSessionOutput(entry), nil
}

func (uc *implUseCase) generate(ctx context.Context, destination string) (string, error) {
	req := llmprovider.UserPrompt(buildPackingPrompt(destination))
	req.Temperature = packingTemperature

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "CreateSession: llm.GenerateContent: %v", err)
		if llmprovider.IsOverloaded(err) {
			return "", fmt.Errorf("%w: %v", packing.ErrServiceOverloaded, err)
		}
		return "", fmt.Errorf("%w: %v", packing.ErrGenerationFailed, err)
	}

	if strings.TrimSpace(resp.Text) == "" {
		uc.l.Warnf(ctx, "CreateSession: empty response from %s", resp.ProviderName)
		return "", packing.ErrEmptyResponse
	}
	return resp.Text, nil
}

// Detail returns the current view of the session.
func (uc *implUseCase) Detail(ctx context.Context, sessionID string) (packing.SessionOutput, error) {
	entry, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return packing.SessionOutput{}, err
	}
	return newSessionOutput(entry), nil
}

// Toggle flips an item's packed state.
func (uc *implUseCase) Toggle(ctx context.Context, input packing.ItemInput) (packing.SessionOutput, error) {
	return uc.mutate(ctx, input.SessionID, func(s *checklist.Store) { s.Toggle(input.ItemID) })
}

// StartEdit opens an item for editing.
func (uc *implUseCase) StartEdit(ctx context.Context, input packing.ItemInput) (packing.SessionOutput, error) {
	return uc.mutate(ctx, input.SessionID, func(s *checklist.Store) { s.StartEdit(input.ItemID) })
}

// CommitEdit saves text into the edit target.
func (uc *implUseCase) CommitEdit(ctx context.Context, input packing.CommitInput) (packing.SessionOutput, error) {
	return uc.mutate(ctx, input.SessionID, func(s *checklist.Store) { s.CommitEdit(input.Text) })
}

// AddItem appends a placeholder item ready for editing.
func (uc *implUseCase) AddItem(ctx context.Context, sessionID string) (packing.SessionOutput, error) {
	return uc.mutate(ctx, sessionID, func(s *checklist.Store) { s.AddItem() })
}

// DeleteItem removes an item.
func (uc *implUseCase) DeleteItem(ctx context.Context, input packing.ItemInput) (packing.SessionOutput, error) {
	return uc.mutate(ctx, input.SessionID, func(s *checklist.Store) { s.DeleteItem(input.ItemID) })
}

// Export renders the session as a markdown checklist.
func (uc *implUseCase) Export(ctx context.Context, sessionID string) (packing.ExportOutput, error) {
	entry, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return packing.ExportOutput{}, err
	}
	return packing.ExportOutput{
		SessionID: entry.ID,
		Markdown:  entry.Store.RenderMarkdown(),
	}, nil
}

// Close discards the session.
func (uc *implUseCase) Close(ctx context.Context, sessionID string) error {
	if !uc.sessions.Close(sessionID) {
		uc.l.Warnf(ctx, "Close: session %s not found", sessionID)
		return packing.ErrSessionNotFound
	}
	return nil
}

func (uc *implUseCase) lookup(ctx context.Context, sessionID string) (*session.Entry, error) {
	entry, ok := uc.sessions.Get(sessionID)
	if !ok {
		uc.l.Warnf(ctx, "session %s not found", sessionID)
		return nil, packing.ErrSessionNotFound
	}
	return entry, nil
}

func (uc *implUseCase) mutate(ctx context.Context, sessionID string, fn func(*checklist.Store)) (packing.SessionOutput, error) {
	entry, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return packing.SessionOutput{}, err
	}
	fn(entry.Store)
	return newSessionOutput(entry), nil
}

func newSessionOutput(entry *session.Entry) packing.SessionOutput {
	items, editing, progress := entry.Store.Snapshot()
	return packing.SessionOutput{
		SessionID:   entry.ID,
		Destination: entry.Destination,
		Items:       items,
		EditTarget:  editing,
		Progress:    progress,
		CreatedAt:   entry.CreatedAt,
	}
}
