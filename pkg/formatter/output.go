package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/triage-ai/pkg/model"
	"gopkg.in/yaml.v3"
)

// DisplayResults formats and displays the triage result
func DisplayResults(result model.TriageResult, format string) error {
	switch format {
	case "json":
		return displayJSON(result)
	case "yaml":
		return displayYAML(result)
	case "human":
		fallthrough
	default:
		displayHuman(result)
	}
	return nil
}

func displayJSON(result model.TriageResult) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(result model.TriageResult) error {
	output, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayHuman(result model.TriageResult) {
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	fmt.Println()

	yellow.Println("📋 LOG ANALYSIS:")
	fmt.Println(wrapText(result.LogAnalysis, 80, "   "))
	fmt.Println()

	red.Println("💡 ROOT CAUSE:")
	fmt.Println(wrapText(result.RootCause, 80, "   "))
	fmt.Println()

	cyan.Println("🔧 FIX SUGGESTION:")
	fmt.Println(wrapText(result.FixSuggestion, 80, "   "))
	fmt.Println()

	if result.FixCode != "" {
		green.Println("📝 FIX CODE:")
		for _, line := range strings.Split(result.FixCode, "\n") {
			fmt.Printf("   %s\n", line)
		}
		fmt.Println()
	}

	// Footer
	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
