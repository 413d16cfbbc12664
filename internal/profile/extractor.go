package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"career-backend/internal/llm"
	"career-backend/internal/shared/telemetry"
)

const (
	// CV text beyond this is cut before prompting; resumes are front-loaded.
	maxPromptChars = 12000

	extractTemperature = 0.1
	extractMaxTokens   = 1024
)

const extractSystemPrompt = "You are an assistant that extracts structured profile data from resumes. " +
	"Respond with a single JSON object only, no markdown, no code fences, no explanations."

func extractUserPrompt(cvText string) string {
	return fmt.Sprintf(`Extract the following fields from the resume text below and return them as one JSON object with exactly these keys:
{
  "name": string or null,
  "email": string or null,
  "phone": string or null,
  "position": string or null,
  "skills": string or null,
  "experience": string or null,
  "languages": [{"language": string, "proficiency": string}] or null
}

Rules:
- Use null for any field that cannot be determined. Never use the string "undefined".
- "languages" must be null if the text mentions no languages; otherwise a list of {language, proficiency} pairs.
- If a proficiency cannot be determined, use "Not specified".
- Return JSON only.

Resume text:
<<<
%s
>>>`, cvText)
}

// Extractor derives structured profile data from CV text via a single
// inference call.
type Extractor struct {
	LLM llm.Client
}

// NewExtractor constructs an Extractor.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{LLM: client}
}

// Extract runs one inference call over the CV text and parses the response.
// It fails open: a provider error, empty response, or malformed JSON yields
// nil, never an error. Output is probabilistic; identical input may not
// produce identical results.
func (e *Extractor) Extract(ctx context.Context, cvText string) *Extracted {
	if e == nil || e.LLM == nil {
		return nil
	}

	text := strings.TrimSpace(cvText)
	if text == "" {
		return nil
	}
	text = truncatePrompt(text, maxPromptChars)

	raw, err := e.LLM.Complete(ctx, extractSystemPrompt, extractUserPrompt(text), extractTemperature, extractMaxTokens)
	if err != nil {
		telemetry.Error("profile.extract.failed", map[string]any{"err": err.Error()})
		return nil
	}

	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil
	}

	var out Extracted
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		telemetry.Error("profile.extract.unparseable", map[string]any{"err": err.Error()})
		return nil
	}
	out.normalize()
	return &out
}

// truncatePrompt cuts s to at most max bytes without splitting a rune.
func truncatePrompt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// stripCodeFence unwraps responses wrapped as ``` ... ``` or ```json ... ```,
// tolerating trailing whitespace and newlines.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
