package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/helmcode/triage-ai/pkg/model"
)

// Character limits applied to stage outputs before assembly. The fix stage
// gets more room because it carries code.
const (
	LogAnalysisLimit = 4000
	RootCauseLimit   = 4000
	FixLimit         = 8000
)

// TruncationMarker is appended when Shorten cuts a text.
const TruncationMarker = "\n\n...[truncated]"

// Matches ```lang\n...\n``` or ```\n...\n```
var fencedBlockRe = regexp.MustCompile("```(?:\\w+)?\n([\\s\\S]*?)\n```")

// Shorten returns text unchanged when its rune count is within maxChars,
// otherwise the first maxChars runes followed by the truncation marker.
func Shorten(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars]) + TruncationMarker
}

// ExtractFencedCode returns the content of the first triple-backtick block
// (optional language tag on the opening fence), trimmed. When no fence
// exists it falls back to collecting all 4-space-indented lines in document
// order, prefix stripped. Plain text with neither yields "".
func ExtractFencedCode(text string) string {
	if text == "" {
		return ""
	}
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	var codeLines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "    ") {
			codeLines = append(codeLines, line[4:])
		}
	}
	if len(codeLines) > 0 {
		return strings.TrimSpace(strings.Join(codeLines, "\n"))
	}
	return ""
}

// StripFirstFencedBlock removes the first fenced block (first occurrence
// only) and trims surrounding whitespace, so the human-readable explanation
// does not duplicate the extracted code.
func StripFirstFencedBlock(text string) string {
	loc := fencedBlockRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
}

// Assemble turns the three raw stage outputs (log analysis, root cause, fix)
// into the final four-field record: shortens each stage, extracts the fix
// code from the shortened fix text, and strips the extracted block from the
// fix suggestion when one was found.
func Assemble(outputs []string) (model.TriageResult, error) {
	if len(outputs) != 3 {
		return model.TriageResult{}, fmt.Errorf("expected 3 stage outputs, got %d", len(outputs))
	}

	logAnalysis := Shorten(outputs[0], LogAnalysisLimit)
	rootCause := Shorten(outputs[1], RootCauseLimit)
	fixText := Shorten(outputs[2], FixLimit)

	fixCode := ExtractFencedCode(fixText)
	fixSuggestion := fixText
	if fixCode != "" && fencedBlockRe.MatchString(fixText) {
		fixSuggestion = StripFirstFencedBlock(fixText)
	}

	return model.TriageResult{
		LogAnalysis:   logAnalysis,
		RootCause:     rootCause,
		FixSuggestion: fixSuggestion,
		FixCode:       fixCode,
	}, nil
}
