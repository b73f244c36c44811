package http

import (
	"travel-planner/internal/packing"
	"travel-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Destination string `json:"destination" binding:"max=200"`
	RawText     string `json:"raw_text"`
	Markdown    string `json:"markdown"`
}

func (r createReq) toInput() packing.CreateSessionInput {
	return packing.CreateSessionInput{
		Destination: r.Destination,
		RawText:     r.RawText,
		Markdown:    r.Markdown,
	}
}

// ---

type itemReq struct {
	SessionID string `uri:"id"      binding:"required"`
	ItemID    string `uri:"item_id" binding:"required"`
}

func (r itemReq) toInput() packing.ItemInput {
	return packing.ItemInput{SessionID: r.SessionID, ItemID: r.ItemID}
}

// ---

type commitReq struct {
	SessionID string `json:"-"`
	Text      string `json:"text" binding:"max=500"`
}

func (r commitReq) toInput() packing.CommitInput {
	return packing.CommitInput{SessionID: r.SessionID, Text: r.Text}
}

// --- Response DTOs ---

type itemResp struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Packed  bool   `json:"packed"`
	Editing bool   `json:"editing"`
}

type progressResp struct {
	Packed  int `json:"packed"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

type sessionResp struct {
	SessionID   string            `json:"session_id"`
	Destination string            `json:"destination"`
	Items       []itemResp        `json:"items"`
	EditTarget  string            `json:"edit_target,omitempty"`
	Progress    progressResp      `json:"progress"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func (h *handler) newSessionResp(out packing.SessionOutput) sessionResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = itemResp{
			ID:      it.ID,
			Text:    it.Text,
			Packed:  it.Packed,
			Editing: it.ID == out.EditTarget,
		}
	}
	return sessionResp{
		SessionID:   out.SessionID,
		Destination: out.Destination,
		Items:       items,
		EditTarget:  out.EditTarget,
		Progress: progressResp{
			Packed:  out.Progress.Packed,
			Total:   out.Progress.Total,
			Percent: out.Progress.Percent,
		},
		CreatedAt: response.DateTime(out.CreatedAt),
	}
}

type exportResp struct {
	SessionID string `json:"session_id"`
	Markdown  string `json:"markdown"`
}

func (h *handler) newExportResp(out packing.ExportOutput) exportResp {
	return exportResp{SessionID: out.SessionID, Markdown: out.Markdown}
}
