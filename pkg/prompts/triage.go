package prompts

import "fmt"

// NoCodeSnippet is substituted into the root-cause and fix prompts when the
// user did not provide a code snippet.
const NoCodeSnippet = "No code snippet provided."

// Prompt pairs a task description (with the user inputs embedded verbatim)
// and a template describing the desired shape of the answer. The template is
// advisory only; nothing validates the model's output against it.
type Prompt struct {
	Description    string
	ExpectedOutput string
}

// Render produces the user message sent to the model.
func (p Prompt) Render() string {
	return fmt.Sprintf("%s\n\nExpected output:\n%s", p.Description, p.ExpectedOutput)
}

// BuildLogPrompt asks for a structured summary of the error log alone.
func BuildLogPrompt(errorLog string) Prompt {
	return Prompt{
		Description: fmt.Sprintf(`Extract error type, file, line number and short meaning from the error log.

ERROR LOG:
%s
`, errorLog),
		ExpectedOutput: `A concise JSON-like summary with keys: error_type, file, line_number, short_message.
Example:
error_type: "TypeError"
file: "app.py"
line_number: 123
short_message: "NoneType is not callable"`,
	}
}

// BuildRootCausePrompt asks for a root-cause explanation given the log and
// the (optional) code snippet.
func BuildRootCausePrompt(errorLog, codeSnippet string) Prompt {
	if codeSnippet == "" {
		codeSnippet = NoCodeSnippet
	}
	return Prompt{
		Description: fmt.Sprintf(`Using the error log and (optional) code, find the root cause.

ERROR LOG:
%s

CODE:
%s
`, errorLog, codeSnippet),
		ExpectedOutput: `A short explanation that points to the source of the bug (file/line or function), why it occurs, and evidence from the log or code.`,
	}
}

// BuildFixPrompt asks for a minimal step-by-step fix with corrected code in
// fenced code blocks.
func BuildFixPrompt(errorLog, codeSnippet string) Prompt {
	if codeSnippet == "" {
		codeSnippet = NoCodeSnippet
	}
	return Prompt{
		Description: fmt.Sprintf(`Provide a step-by-step fix and corrected code. Keep the patch minimal: only include changed lines or a concise fixed file. Use fenced code blocks for any code.

ERROR LOG:
%s

CODE:
%s
`, errorLog, codeSnippet),
		ExpectedOutput: "1) Short summary of the fix.\n2) Fixed code block(s) fenced with triple-backticks (```).\n3) Any verification steps/commands to test the fix.",
	}
}
