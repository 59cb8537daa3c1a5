package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// LlamaClient is the alternate extraction backend for deployments
// without Gemini access, speaking to a hosted or local Llama endpoint.
type LlamaClient struct {
	apiKey string
	model  string
	apiURL string
	http   *http.Client
}

func NewLlamaClient() *LlamaClient {
	return &LlamaClient{
		apiKey: os.Getenv("LLAMA_API_KEY"),
		model:  os.Getenv("LLAMA_MODEL"),
		apiURL: os.Getenv("LLAMA_API_URL"),
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (l *LlamaClient) ExtractItem(
	ctx context.Context,
	lineText string,
	categoryHint string,
) (*Extraction, error) {

	if l.apiURL == "" {
		return nil, errors.New("missing LLAMA_API_URL")
	}
	if l.model == "" {
		return nil, errors.New("missing LLAMA_MODEL")
	}
	if lineText == "" {
		return nil, errors.New("empty menu line")
	}

	payload := map[string]any{
		"model":       l.model,
		"input":       BuildItemExtractPrompt(lineText, categoryHint),
		"temperature": 0.1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		l.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, err
	}

	if l.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+l.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llama api error: %s", string(raw))
	}

	return decodeLlamaExtraction(raw)
}

// decodeLlamaExtraction handles the response shapes different Llama
// serving stacks produce. Each wraps the model output under its own
// key; when no wrapper matches, the body itself is the extraction.
func decodeLlamaExtraction(raw []byte) (*Extraction, error) {
	jsonText := salvageJSON(string(raw))
	if jsonText == "" {
		return nil, errors.New("llama did not return valid JSON")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, err
	}

	if v, ok := parsed["output_text"].(string); ok && v != "" {
		return ParseExtraction([]byte(salvageJSON(v)))
	}

	if v, ok := parsed["generated_text"].(string); ok && v != "" {
		return ParseExtraction([]byte(salvageJSON(v)))
	}

	if gen, ok := parsed["generation"].(map[string]any); ok {
		if txt, ok := gen["text"].(string); ok && txt != "" {
			return ParseExtraction([]byte(salvageJSON(txt)))
		}
	}

	return ParseExtraction([]byte(jsonText))
}

// salvageJSON cuts the outermost JSON object out of a response that
// may carry prose around it.
func salvageJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
