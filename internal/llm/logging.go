package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// LoggingProvider is a decorator that writes a line per LLM request to a
// debug sink. With no durable store in the app, this is the observability
// surface: point it at a file via FUNDA_LLM_DEBUG_LOG or at stderr.
type LoggingProvider struct {
	inner Provider
	out   io.Writer
}

// WithLogging wraps a Provider with request logging. A nil writer
// disables logging and returns the provider unchanged.
func WithLogging(p Provider, out io.Writer) Provider {
	if out == nil {
		return p
	}
	return &LoggingProvider{inner: p, out: out}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	entry := logEntry{
		Time:      start.UTC().Format(time.RFC3339),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		Request:   serializeRequest(req),
	}
	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
		entry.Response = string(resp.Content)
	}
	if err != nil {
		entry.Error = err.Error()
	}

	// Best-effort: a failed log write never fails the request.
	if data, mErr := json.Marshal(entry); mErr == nil {
		fmt.Fprintf(l.out, "%s\n", data)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

type logEntry struct {
	Time         string `json:"time"`
	Model        string `json:"model"`
	Purpose      string `json:"purpose,omitempty"`
	LatencyMs    int64  `json:"latency_ms"`
	Success      bool   `json:"success"`
	InputTokens  int    `json:"input_tokens,omitempty"`
	OutputTokens int    `json:"output_tokens,omitempty"`
	Request      string `json:"request"`
	Response     string `json:"response,omitempty"`
	Error        string `json:"error,omitempty"`
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
