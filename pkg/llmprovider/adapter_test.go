package llmprovider

import (
	"context"
	"testing"

	"travel-planner/pkg/gemini"
	"travel-planner/pkg/qwen"
)

type fakeGemini struct {
	got  *gemini.Request
	resp *gemini.Response
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return f.resp, nil
}

func (f *fakeGemini) Model() string { return "gemini-test" }

type fakeQwen struct {
	got  *qwen.Request
	resp *qwen.Response
}

func (f *fakeQwen) GenerateContent(ctx context.Context, req *qwen.Request) (*qwen.Response, error) {
	f.got = req
	return f.resp, nil
}

func (f *fakeQwen) Model() string { return "qwen-test" }

func TestGeminiAdapter(t *testing.T) {
	client := &fakeGemini{resp: &gemini.Response{
		Content: gemini.Content{Parts: []gemini.Part{{Text: "Day 1\n"}, {Text: "Beach"}}},
	}}
	adapter := NewGeminiAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		System: "sys",
		Messages: []Message{
			{Role: "user", Text: "hi"},
			{Role: "assistant", Text: "hello"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text != "Day 1\nBeach" {
		t.Errorf("expected joined parts, got %q", resp.Text)
	}
	if resp.ProviderName != "gemini" || resp.ModelName != "gemini-test" {
		t.Errorf("unexpected provider info: %s/%s", resp.ProviderName, resp.ModelName)
	}
	if resp.Usage != nil {
		t.Errorf("expected nil usage when upstream sends none")
	}
	if client.got.SystemInstruction == nil || client.got.SystemInstruction.Parts[0].Text != "sys" {
		t.Errorf("system instruction not forwarded")
	}
	if client.got.Messages[1].Role != "model" {
		t.Errorf("expected assistant role mapped to model, got %s", client.got.Messages[1].Role)
	}
}

func TestQwenAdapter(t *testing.T) {
	client := &fakeQwen{resp: &qwen.Response{
		Message: qwen.Message{Role: "assistant", Content: "- passport"},
		Usage:   &qwen.Usage{InputTokens: 1, OutputTokens: 2, TotalTokens: 3},
	}}
	adapter := NewQwenAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), UserPrompt("pack"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "- passport" || resp.Usage.TotalTokens != 3 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if client.got.System != "" || client.got.Messages[0].Content != "pack" {
		t.Errorf("unexpected forwarded request: %+v", client.got)
	}
}
