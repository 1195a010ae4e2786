package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/minsu/prompt-generator/internal/checklist"
	"github.com/minsu/prompt-generator/internal/config"
	"github.com/minsu/prompt-generator/internal/llm"
	"github.com/minsu/prompt-generator/internal/pipeline"
	"github.com/minsu/prompt-generator/internal/rulepack"
	"github.com/minsu/prompt-generator/internal/tokens"
	"github.com/minsu/prompt-generator/internal/types"
	"github.com/minsu/prompt-generator/internal/validation"
)

var (
	genTopic        string
	genFormat       string
	genLevel        string
	genContext      string
	genTone         string
	genMode         string
	genRequirements []string
	genOutput       string
	genJSON         bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one prompt from the command line",
	Long:  `Run the full generation pipeline once without starting the server. Requires GEMINI_API_KEY.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genTopic, "topic", "", "Document topic (required)")
	generateCmd.Flags().StringVar(&genFormat, "format", string(types.FormatPressRelease), "Output format")
	generateCmd.Flags().StringVar(&genLevel, "level", string(types.LevelIntermediate), "Detail level")
	generateCmd.Flags().StringVar(&genContext, "context", "", "Background context")
	generateCmd.Flags().StringVar(&genTone, "tone", "", "Tone identifier (defaults to the format's tone)")
	generateCmd.Flags().StringVar(&genMode, "mode", "", "Rule-pack mode")
	generateCmd.Flags().StringArrayVar(&genRequirements, "requirement", nil, "Additional requirement (repeatable, max 5)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Write the prompt to a file instead of stdout")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print the full response as JSON")
	_ = generateCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Development())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	req := &types.GenerateRequest{
		Topic:                  genTopic,
		Format:                 types.Format(genFormat),
		Level:                  types.Level(genLevel),
		Context:                genContext,
		Tone:                   genTone,
		Mode:                   genMode,
		AdditionalRequirements: genRequirements,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}
	llmCfg.Timeout = cfg.LLMTimeout

	client, err := llm.NewGeminiClient(cmd.Context(), llmCfg, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	gen := pipeline.New(
		rulepack.NewStore(),
		checklist.NewStore(),
		tokens.NewGovernor(),
		tokens.NewUsageLogger(logger.Named("usage"), nil),
		client,
		validation.New(validation.Config{}),
		logger,
	)

	resp, err := gen.Generate(cmd.Context(), req, uuid.New().String())
	if err != nil {
		return err
	}

	if genJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if genOutput != "" {
		if err := os.WriteFile(genOutput, []byte(resp.Prompt), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(resp.Prompt)
	}

	fmt.Fprintf(os.Stderr, "format=%s level=%s score=%d tokens=%d request=%s\n",
		resp.Metadata.Format, resp.Metadata.Level,
		resp.Validation.Score, resp.Metadata.TokenCount, resp.Metadata.RequestID)
	return nil
}
