package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider configuration",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured provider with a test question",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := resolveLLMConfig()
		if !ok {
			fmt.Println("No LLM provider configured.")
			fmt.Println()
			fmt.Println("Set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or")
			fmt.Println("OPENROUTER_API_KEY, or configure a provider explicitly via")
			fmt.Println("FUNDA_LLM_PROVIDER and FUNDA_<PROVIDER>_API_KEY.")
			return fmt.Errorf("no provider configured")
		}

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", provider.ModelID())
		fmt.Println()
		fmt.Println("Generating a test question...")

		generator := contentgen.New(provider, contentgen.DefaultConfig())
		settings := contentgen.DefaultSettings()

		start := time.Now()
		question, err := generator.Generate(ctx, settings)
		latency := time.Since(start)
		if err != nil {
			return fmt.Errorf("test generation failed: %w", err)
		}

		fmt.Println()
		fmt.Printf("Question:  %s\n", question.Text)
		if len(question.Options) > 0 {
			for i, opt := range question.Options {
				fmt.Printf("           %d) %s\n", i+1, opt)
			}
		}
		fmt.Printf("Answer:    %s\n", question.CorrectAnswer)
		if question.CulturalContext != "" {
			fmt.Printf("Context:   %s\n", question.CulturalContext)
		}
		fmt.Printf("Latency:   %dms\n", latency.Milliseconds())

		if cost := llm.LookupCost(provider.ModelID()); cost != nil {
			// A rough per-question figure using the default token budget.
			fmt.Printf("Est. cost: $%.5f per question (at full token budget)\n",
				cost.Cost(1500, contentgen.DefaultConfig().MaxTokens))
		}

		fmt.Println()
		fmt.Println("Provider is working. Run `funda` to start learning!")
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
