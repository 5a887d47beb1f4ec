package model

import "fmt"

// TriageRequest carries the user-supplied inputs for one triage run.
// ErrorLog is required; CodeSnippet may be empty.
type TriageRequest struct {
	ErrorLog    string `json:"error_log"`
	CodeSnippet string `json:"code_snippet,omitempty"`
}

// TriageResult is the four-field record produced by every run. All fields
// are always present; a field with nothing to say is the empty string.
type TriageResult struct {
	LogAnalysis   string `json:"log_analysis" yaml:"log_analysis"`
	RootCause     string `json:"root_cause" yaml:"root_cause"`
	FixSuggestion string `json:"fix_suggestion" yaml:"fix_suggestion"`
	FixCode       string `json:"fix_code" yaml:"fix_code"`
}

// EmptyLogResult is returned when the trimmed error log is empty. The
// pipeline is never invoked on this path.
func EmptyLogResult() TriageResult {
	return TriageResult{LogAnalysis: "Please provide an error log."}
}

// KickoffFailureResult is returned when a stage invocation fails. Remaining
// stages are aborted and no partial output survives.
func KickoffFailureResult(err error) TriageResult {
	return TriageResult{LogAnalysis: fmt.Sprintf("ERROR during kickoff: %v", err)}
}

// ExtractionFailureResult is returned when post-processing of the stage
// outputs fails.
func ExtractionFailureResult(err error) TriageResult {
	return TriageResult{
		LogAnalysis: "Error extracting outputs from triage stages.",
		RootCause:   err.Error(),
	}
}
