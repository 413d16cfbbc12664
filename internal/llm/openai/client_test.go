package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientRequiresModel(t *testing.T) {
	if _, err := NewClient("key", ""); err == nil {
		t.Fatal("expected error for empty model")
	}
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestCompleteReturnsMessageContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"name\":\"Ana\"}"}}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = srv.URL

	out, err := client.Complete(context.Background(), "system", "user", 0.1, 1000)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `{"name":"Ana"}` {
		t.Fatalf("unexpected content: %q", out)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = srv.URL

	if _, err := client.Complete(context.Background(), "system", "user", 0, 0); err == nil {
		t.Fatal("expected API error")
	}
}
