package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmcode/triage-ai/pkg/analyzer"
	"github.com/helmcode/triage-ai/pkg/formatter"
	"github.com/helmcode/triage-ai/pkg/model"
)

var (
	errorLog     string
	errorLogFile string
	codeSnippet  string
	codeFile     string
	provider     string
	modelName    string
	outputFormat string
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Triage an error log with AI assistance",
		Long: `Run an error log (and optionally the related code snippet) through the
three triage stages (log analysis, root cause, fix suggestion) and print
the result.

Examples:
  # Triage a log from a file
  triage-ai analyze --log-file error.log

  # Include the code that produced the error
  triage-ai analyze --log-file error.log --code-file handler.py

  # Paste interactively (finish each input with a blank line)
  triage-ai analyze

  # Use a different provider and machine-readable output
  triage-ai analyze --log-file error.log --provider claude -o json`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	// Flags
	cmd.Flags().StringVar(&errorLog, "log", "", "Error log text")
	cmd.Flags().StringVar(&errorLogFile, "log-file", "", "Path to a file containing the error log")
	cmd.Flags().StringVar(&codeSnippet, "code", "", "Code snippet text (optional)")
	cmd.Flags().StringVar(&codeFile, "code-file", "", "Path to a file containing the code snippet (optional)")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (gemini, claude, openai); defaults to LLM_PROVIDER or gemini")
	cmd.Flags().StringVar(&modelName, "model", "", "Model identifier override")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log, err := resolveInput(errorLog, errorLogFile, "Paste your error log (finish with a blank line):")
	if err != nil {
		return err
	}
	if strings.TrimSpace(log) == "" {
		return fmt.Errorf("an error log is required")
	}

	code, err := resolveInput(codeSnippet, codeFile, "Paste your code snippet (optional, finish with a blank line):")
	if err != nil {
		return err
	}

	triager, err := analyzer.NewFromEnv(cmd.Context(), provider, modelName)
	if err != nil {
		return err
	}

	printHeader(triager.Model())

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Running triage stages..."
	s.Start()

	result := triager.Run(cmd.Context(), model.TriageRequest{
		ErrorLog:    log,
		CodeSnippet: code,
	})

	s.Stop()
	printSuccess("Triage complete")

	return formatter.DisplayResults(result, outputFormat)
}

// resolveInput picks the first of: flag value, file contents, interactive
// paste. Interactive mode is skipped when stdin is not a terminal.
func resolveInput(flagValue, filePath, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filePath, err)
		}
		return string(data), nil
	}
	return readMultiline(prompt)
}

func readMultiline(prompt string) (string, error) {
	fmt.Println(prompt)

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}

func printHeader(modelID string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🐛 AI Bug Triage")
	fmt.Printf("🤖 Model: %s\n", modelID)
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}
