package prompts

import "fmt"

// Persona is the role/goal/backstory configuration bundled with a stage.
// It only conditions the model's response; it carries no tooling.
type Persona struct {
	Role      string
	Goal      string
	Backstory string
}

var (
	LogAnalyzer = Persona{
		Role:      "Log Analyzer",
		Goal:      "Extract error type, file, line and key message from logs.",
		Backstory: "Expert at reading stack traces and error logs.",
	}

	RootCauseAnalyst = Persona{
		Role:      "Root Cause Analyst",
		Goal:      "Identify what went wrong, where, and why.",
		Backstory: "Senior debugger with deep problem solving skills.",
	}

	FixGenerator = Persona{
		Role:      "Fix Generator",
		Goal:      "Provide step-by-step fixes and corrected code.",
		Backstory: "Mentor developer who explains fixes clearly and provides minimal patches.",
	}
)

// SystemPrompt renders the persona as the system message for its stage.
func (p Persona) SystemPrompt() string {
	return fmt.Sprintf(`You are a %s. %s
Your goal: %s`, p.Role, p.Backstory, p.Goal)
}
