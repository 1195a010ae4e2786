// Package main provides the entry point for the prompt generator service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "prompt_agent",
	Short: "공공기관 프롬프트 생성기",
	Long:  "Generates ready-to-use Korean LLM prompts for public-sector document work: press releases, speeches, SNS posts, official inquiries, reports, and media briefs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. Development mode gets the console
// encoder, everything else structured JSON.
func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
