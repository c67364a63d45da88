package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lamila/fundabuddy/internal/app"
	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/llm"
	"github.com/lamila/fundabuddy/internal/session"
	"github.com/lamila/fundabuddy/internal/speech"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a learning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// resolveLLMConfig prefers explicit FUNDA_* configuration, then falls
// back to probing the providers' standard API key variables.
func resolveLLMConfig() (llm.Config, bool) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, true
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, true
	}
	return cfg, false
}

// runApp builds dependencies and launches the TUI. The app starts even
// without an LLM provider; the quiz entry stays disabled until a key is
// configured.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	ctrl := session.New(session.WithSpeaker(speech.NewSpeaker()))

	var generator contentgen.Generator
	cfg, llmReady := resolveLLMConfig()
	if llmReady {
		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Quizzes will be unavailable until a key is set.")
			llmReady = false
		} else {
			generator = contentgen.New(provider, contentgen.DefaultConfig())
		}
	}

	return app.Run(app.Options{
		Controller: ctrl,
		Generator:  generator,
		LLMReady:   llmReady,
		Version:    version,
	})
}
