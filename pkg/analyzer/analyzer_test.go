package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/triage-ai/pkg/model"
)

type call struct {
	system string
	prompt string
}

// fakeLLM records every Chat invocation and replays canned responses.
type fakeLLM struct {
	calls     []call
	responses []string
	errAt     int // 1-based stage index that fails; 0 means never
}

func (f *fakeLLM) Chat(ctx context.Context, system, prompt string) (string, error) {
	f.calls = append(f.calls, call{system: system, prompt: prompt})
	if f.errAt == len(f.calls) {
		return "", errors.New("model unavailable")
	}
	if len(f.calls) <= len(f.responses) {
		return f.responses[len(f.calls)-1], nil
	}
	return "", nil
}

func (f *fakeLLM) Model() string { return "fake-model" }

func TestRun_EmptyErrorLog(t *testing.T) {
	fake := &fakeLLM{}
	a := NewWithLLM(fake)

	result := a.Run(context.Background(), model.TriageRequest{ErrorLog: "   \n\t "})

	assert.Equal(t, model.EmptyLogResult(), result)
	assert.Empty(t, fake.calls, "empty log must not contact the model")
}

func TestRun_StagesInOrder(t *testing.T) {
	fake := &fakeLLM{responses: []string{
		"error_type: NullPointerException",
		"Foo.java line 42 dereferences null.",
		"Add a nil check:\n```java\nif (foo != null) { foo.bar(); }\n```\nRecompile and rerun.",
	}}
	a := NewWithLLM(fake)

	result := a.Run(context.Background(), model.TriageRequest{
		ErrorLog:    "NullPointerException at Foo.java:42",
		CodeSnippet: "foo.bar();",
	})

	require.Len(t, fake.calls, 3)

	// Stage order: log analysis, root cause, fix.
	assert.Contains(t, fake.calls[0].system, "Log Analyzer")
	assert.Contains(t, fake.calls[1].system, "Root Cause Analyst")
	assert.Contains(t, fake.calls[2].system, "Fix Generator")

	// Stages 2 and 3 receive only the original inputs, never stage 1's output.
	for _, c := range fake.calls[1:] {
		assert.Contains(t, c.prompt, "NullPointerException at Foo.java:42")
		assert.Contains(t, c.prompt, "foo.bar();")
		assert.NotContains(t, c.prompt, "error_type: NullPointerException")
	}

	assert.Equal(t, "error_type: NullPointerException", result.LogAnalysis)
	assert.Equal(t, "Foo.java line 42 dereferences null.", result.RootCause)
	assert.Equal(t, "if (foo != null) { foo.bar(); }", result.FixCode)
	assert.NotContains(t, result.FixSuggestion, "```")
}

func TestRun_NoCodeSnippetPlaceholder(t *testing.T) {
	fake := &fakeLLM{responses: []string{"a", "b", "c"}}
	a := NewWithLLM(fake)

	a.Run(context.Background(), model.TriageRequest{ErrorLog: "boom"})

	require.Len(t, fake.calls, 3)
	assert.Contains(t, fake.calls[1].prompt, "No code snippet provided.")
	assert.Contains(t, fake.calls[2].prompt, "No code snippet provided.")
}

func TestRun_FirstStageFailureAbortsRest(t *testing.T) {
	fake := &fakeLLM{errAt: 1}
	a := NewWithLLM(fake)

	result := a.Run(context.Background(), model.TriageRequest{ErrorLog: "boom"})

	assert.Len(t, fake.calls, 1, "remaining stages must not run")
	assert.Equal(t, "ERROR during kickoff: model unavailable", result.LogAnalysis)
	assert.Equal(t, "", result.RootCause)
	assert.Equal(t, "", result.FixSuggestion)
	assert.Equal(t, "", result.FixCode)
}

func TestRun_MidPipelineFailureDropsPartialOutput(t *testing.T) {
	fake := &fakeLLM{responses: []string{"stage one output"}, errAt: 2}
	a := NewWithLLM(fake)

	result := a.Run(context.Background(), model.TriageRequest{ErrorLog: "boom"})

	assert.Len(t, fake.calls, 2)
	assert.Equal(t, "ERROR during kickoff: model unavailable", result.LogAnalysis)
	assert.NotContains(t, result.LogAnalysis, "stage one output")
	assert.Equal(t, "", result.RootCause)
}

func TestRun_ResultFieldsAlwaysPresent(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeLLM
	}{
		{"success with empty responses", &fakeLLM{responses: []string{"", "", ""}}},
		{"invocation failure", &fakeLLM{errAt: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewWithLLM(tt.fake)
			result := a.Run(context.Background(), model.TriageRequest{ErrorLog: "x"})

			data, err := json.Marshal(result)
			require.NoError(t, err)

			var fields map[string]string
			require.NoError(t, json.Unmarshal(data, &fields))
			for _, key := range []string{"log_analysis", "root_cause", "fix_suggestion", "fix_code"} {
				_, ok := fields[key]
				assert.True(t, ok, "field %s missing from result", key)
			}
		})
	}
}

func TestRun_TrimsInputs(t *testing.T) {
	fake := &fakeLLM{responses: []string{"a", "b", "c"}}
	a := NewWithLLM(fake)

	a.Run(context.Background(), model.TriageRequest{
		ErrorLog:    "  padded log  ",
		CodeSnippet: "\n\tpadded code\n",
	})

	require.Len(t, fake.calls, 3)
	assert.Contains(t, fake.calls[0].prompt, "ERROR LOG:\npadded log\n")
	assert.Contains(t, fake.calls[1].prompt, "CODE:\npadded code\n")
}
