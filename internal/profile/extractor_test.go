package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

type staticLLM struct {
	resp string
	err  error
}

func (s staticLLM) Complete(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	_ = ctx
	_ = system
	_ = user
	return s.resp, s.err
}

const sampleJSON = `{"name":"Ana","email":"ana@example.com","phone":null,"position":"Engineer","skills":null,"experience":null,"languages":[{"language":"Spanish","proficiency":"Native"}]}`

func TestExtractPlainJSON(t *testing.T) {
	ex := NewExtractor(staticLLM{resp: sampleJSON})

	got := ex.Extract(context.Background(), "cv text")
	if got == nil {
		t.Fatal("expected extraction result")
	}
	if got.Name != "Ana" || got.Email != "ana@example.com" || got.Position != "Engineer" {
		t.Fatalf("unexpected fields: %+v", got)
	}
	if got.Phone != "" || got.Skills != "" || got.Experience != "" {
		t.Fatalf("null fields should normalize to empty: %+v", got)
	}
	if len(got.Languages) != 1 || got.Languages[0].Language != "Spanish" {
		t.Fatalf("unexpected languages: %+v", got.Languages)
	}
}

func TestExtractStripsCodeFences(t *testing.T) {
	fenced := []string{
		"```json\n" + sampleJSON + "\n```",
		"```\n" + sampleJSON + "\n```",
		"```json\n" + sampleJSON + "\n```\n\n",
		"  ```json\n" + sampleJSON + "\n``` ",
	}
	for _, resp := range fenced {
		ex := NewExtractor(staticLLM{resp: resp})
		got := ex.Extract(context.Background(), "cv text")
		if got == nil {
			t.Fatalf("expected result for fenced response %q", resp)
		}
		if got.Name != "Ana" {
			t.Fatalf("unexpected name %q for response %q", got.Name, resp)
		}
	}
}

func TestExtractFailsOpen(t *testing.T) {
	cases := []staticLLM{
		{resp: "", err: errors.New("provider down")},
		{resp: ""},
		{resp: "Sorry, I cannot help with that."},
		{resp: "```json\nnot json\n```"},
	}
	for i, client := range cases {
		ex := NewExtractor(client)
		if got := ex.Extract(context.Background(), "cv text"); got != nil {
			t.Fatalf("case %d: expected nil, got %+v", i, got)
		}
	}
}

func TestExtractEmptyTextSkipsCall(t *testing.T) {
	ex := NewExtractor(staticLLM{resp: sampleJSON})
	if got := ex.Extract(context.Background(), "   "); got != nil {
		t.Fatalf("expected nil for empty cv text, got %+v", got)
	}
}

func TestExtractNormalizesPlaceholders(t *testing.T) {
	resp := `{"name":"undefined","email":"NULL","phone":"+123","position":null,"skills":null,"experience":null,"languages":[{"language":"German","proficiency":""},{"language":"undefined","proficiency":"B2"}]}`
	ex := NewExtractor(staticLLM{resp: resp})

	got := ex.Extract(context.Background(), "cv text")
	if got == nil {
		t.Fatal("expected extraction result")
	}
	if got.Name != "" || got.Email != "" {
		t.Fatalf("placeholders should normalize to empty: %+v", got)
	}
	if got.Phone != "+123" {
		t.Fatalf("unexpected phone: %q", got.Phone)
	}
	if len(got.Languages) != 1 {
		t.Fatalf("placeholder language entry should be dropped: %+v", got.Languages)
	}
	if got.Languages[0].Proficiency != "Not specified" {
		t.Fatalf("expected default proficiency, got %q", got.Languages[0].Proficiency)
	}
}

func TestTruncatePromptKeepsRuneBoundaries(t *testing.T) {
	prefix := strings.Repeat("a", 9)
	s := prefix + "é" // two-byte rune starting at offset 9

	got := truncatePrompt(s, 10)
	if got != prefix {
		t.Fatalf("expected cut before the split rune, got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncated prompt is not valid UTF-8: %q", got)
	}

	if got := truncatePrompt(s, 11); got != s {
		t.Fatalf("string within limit should pass through, got %q", got)
	}
	if got := truncatePrompt("abc", 10); got != "abc" {
		t.Fatalf("short string should pass through, got %q", got)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```json\n{\"a\":1}\n```\n", `{"a":1}`},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Fatalf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
