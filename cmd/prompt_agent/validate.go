package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minsu/prompt-generator/internal/checklist"
	"github.com/minsu/prompt-generator/internal/types"
	"github.com/minsu/prompt-generator/internal/validation"
)

var (
	valFormat        string
	valLevel         string
	valWithChecklist bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Run the quality gate against an existing prompt file",
	Long:  `Score a prompt file against the quality scorecard without calling any model. Exits non-zero when the prompt fails a hard check.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&valFormat, "format", string(types.FormatPressRelease), "Output format")
	validateCmd.Flags().StringVar(&valLevel, "level", string(types.LevelIntermediate), "Detail level")
	validateCmd.Flags().BoolVar(&valWithChecklist, "checklist", true, "Score against the format/level checklist")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	format := types.Format(valFormat)
	if !format.Valid() {
		return fmt.Errorf("unknown format %q", valFormat)
	}
	level := types.Level(valLevel)
	if !level.Valid() {
		return fmt.Errorf("unknown level %q", valLevel)
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var cl *checklist.Checklist
	if valWithChecklist {
		cl, err = checklist.NewStore().Load(format, level, "")
		if err != nil {
			return fmt.Errorf("failed to load checklist: %w", err)
		}
	}

	outcome := validation.New(validation.Config{}).Evaluate(string(content), format, cl)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(types.ValidationResult{
		Passed:      outcome.IsValid,
		Score:       outcome.Score,
		Checklist:   outcome.Checklist,
		Warnings:    outcome.Warnings,
		Suggestions: outcome.Errors,
	}); err != nil {
		return err
	}

	if !outcome.IsValid {
		return fmt.Errorf("quality gate failed with score %d", outcome.Score)
	}
	return nil
}
