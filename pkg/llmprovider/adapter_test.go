package llmprovider

import (
	"context"
	"testing"

	"event-planning-assistant/pkg/deepseek"
	"event-planning-assistant/pkg/gemini"
)

type fakeDeepSeek struct {
	lastReq *deepseek.Request
}

func (f *fakeDeepSeek) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.lastReq = req
	return &deepseek.Response{Choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: "{}"}}}}, nil
}

func (f *fakeDeepSeek) Model() string { return "deepseek-test" }

type fakeGemini struct {
	lastReq *gemini.Request
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.lastReq = req
	return &gemini.Response{Text: "{}"}, nil
}

func (f *fakeGemini) Model() string { return "gemini-test" }

func TestDeepSeekAdapter_ResponseFormat(t *testing.T) {
	tests := []struct {
		name       string
		req        Request
		wantFormat bool
	}{
		{name: "plain text", req: Request{Prompt: "hi"}},
		{name: "json array stays text mode", req: Request{Prompt: "tasks", JSONMode: true}},
		{name: "json object", req: Request{Prompt: "classify", JSONObject: true}, wantFormat: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeDeepSeek{}
			adapter := NewDeepSeekAdapter(client)

			if _, err := adapter.GenerateContent(context.Background(), &tt.req); err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}

			got := client.lastReq.ResponseFormat
			if !tt.wantFormat {
				if got != nil {
					t.Errorf("Expected no response_format, got %+v", got)
				}
				return
			}
			if got == nil || got.Type != deepseek.ResponseFormatJSON {
				t.Errorf("Expected response_format %s, got %+v", deepseek.ResponseFormatJSON, got)
			}
		})
	}
}

func TestGeminiAdapter_JSONObjectImpliesJSONMode(t *testing.T) {
	client := &fakeGemini{}
	adapter := NewGeminiAdapter(client)

	if _, err := adapter.GenerateContent(context.Background(), &Request{Prompt: "classify", JSONObject: true}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !client.lastReq.JSONMode {
		t.Errorf("Expected JSON mode for an object request")
	}
}
