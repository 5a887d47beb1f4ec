package analyzer

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/helmcode/triage-ai/pkg/llm"
	"github.com/helmcode/triage-ai/pkg/model"
	"github.com/helmcode/triage-ai/pkg/parser"
	"github.com/helmcode/triage-ai/pkg/prompts"
)

// Config selects the hosted model the three stages run against. It is built
// once at process start and handed to New; nothing reads it afterwards.
type Config struct {
	Provider llm.Provider
	APIKey   string
	Model    string
}

// stage pairs a persona with the builder for its task prompt.
type stage struct {
	persona prompts.Persona
	build   func(errorLog, codeSnippet string) prompts.Prompt
}

var stages = []stage{
	{prompts.LogAnalyzer, func(errorLog, _ string) prompts.Prompt {
		return prompts.BuildLogPrompt(errorLog)
	}},
	{prompts.RootCauseAnalyst, prompts.BuildRootCausePrompt},
	{prompts.FixGenerator, prompts.BuildFixPrompt},
}

type Analyzer struct {
	llm llm.LLM
}

func New(ctx context.Context, cfg Config) (*Analyzer, error) {
	factory := llm.NewFactory()
	llmInstance, err := factory.CreateLLM(ctx, cfg.Provider, map[string]string{
		"api_key": cfg.APIKey,
		"model":   cfg.Model,
	})
	if err != nil {
		return nil, err
	}
	return &Analyzer{llm: llmInstance}, nil
}

func NewFromEnv(ctx context.Context, providerOverride, modelOverride string) (*Analyzer, error) {
	llmInstance, err := llm.CreateFromEnv(ctx, providerOverride, modelOverride)
	if err != nil {
		return nil, err
	}
	return &Analyzer{llm: llmInstance}, nil
}

func NewWithLLM(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l}
}

// Model returns the identifier of the model the stages run against.
func (a *Analyzer) Model() string {
	return a.llm.Model()
}

// Run executes the three triage stages strictly in order and assembles the
// four-field result. The stages are textually independent: each receives
// only the original inputs, never a previous stage's output. Run never
// returns an error; both failure classes degrade to fixed records.
func (a *Analyzer) Run(ctx context.Context, req model.TriageRequest) model.TriageResult {
	errorLog := strings.TrimSpace(req.ErrorLog)
	codeSnippet := strings.TrimSpace(req.CodeSnippet)

	if errorLog == "" {
		return model.EmptyLogResult()
	}

	outputs := make([]string, 0, len(stages))
	for _, st := range stages {
		prompt := st.build(errorLog, codeSnippet)

		raw, err := a.llm.Chat(ctx, st.persona.SystemPrompt(), prompt.Render())
		if err != nil {
			log.Error().
				Err(err).
				Str("stage", st.persona.Role).
				Str("model", a.llm.Model()).
				Msg("Stage invocation failed, aborting remaining stages")
			return model.KickoffFailureResult(err)
		}
		outputs = append(outputs, raw)
	}

	result, err := parser.Assemble(outputs)
	if err != nil {
		log.Error().Err(err).Msg("Failed to extract stage outputs")
		return model.ExtractionFailureResult(err)
	}

	log.Info().
		Int("logAnalysisLen", len(result.LogAnalysis)).
		Int("rootCauseLen", len(result.RootCause)).
		Int("fixSuggestionLen", len(result.FixSuggestion)).
		Msg("Triage run completed")

	return result
}
