package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to gemini", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "")
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "")

		client, err := CreateFromEnv(ctx, "", "")
		require.NoError(t, err)

		assert.IsType(t, &Gemini{}, client)
		assert.Equal(t, "gemini-2.0-flash", client.Model())
	})

	t.Run("gemini requires API key", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "gemini")
		t.Setenv("GEMINI_API_KEY", "")

		_, err := CreateFromEnv(ctx, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("GEMINI_MODEL override", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "gemini")
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

		client, err := CreateFromEnv(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-pro", client.Model())
	})

	t.Run("claude from env", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "claude")
		t.Setenv("ANTHROPIC_API_KEY", "test-key")
		t.Setenv("CLAUDE_MODEL", "")

		client, err := CreateFromEnv(ctx, "", "")
		require.NoError(t, err)
		assert.IsType(t, &Claude{}, client)
	})

	t.Run("claude requires API key", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "claude")
		t.Setenv("ANTHROPIC_API_KEY", "")

		_, err := CreateFromEnv(ctx, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
	})

	t.Run("openai from env with model override", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "openai")
		t.Setenv("OPENAI_API_KEY", "test-key")
		t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

		client, err := CreateFromEnv(ctx, "", "")
		require.NoError(t, err)
		assert.IsType(t, &OpenAI{}, client)
		assert.Equal(t, "gpt-4o-mini", client.Model())
	})

	t.Run("flag overrides beat env", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "gemini")
		t.Setenv("OPENAI_API_KEY", "test-key")
		t.Setenv("OPENAI_MODEL", "gpt-4o")

		client, err := CreateFromEnv(ctx, "openai", "gpt-4.1")
		require.NoError(t, err)
		assert.IsType(t, &OpenAI{}, client)
		assert.Equal(t, "gpt-4.1", client.Model())
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "mystery")

		_, err := CreateFromEnv(ctx, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported LLM_PROVIDER")
	})
}

func TestFactoryCreateLLM(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory()

	t.Run("builds each provider", func(t *testing.T) {
		for _, provider := range factory.GetAvailableProviders() {
			client, err := factory.CreateLLM(ctx, provider, map[string]string{"api_key": "test-key"})
			require.NoError(t, err, "provider %s", provider)
			assert.NotEmpty(t, client.Model())
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		_, err := factory.CreateLLM(ctx, ProviderGemini, map[string]string{})
		require.Error(t, err)
	})

	t.Run("model passthrough", func(t *testing.T) {
		client, err := factory.CreateLLM(ctx, ProviderClaude, map[string]string{
			"api_key": "test-key",
			"model":   "claude-3-5-haiku-latest",
		})
		require.NoError(t, err)
		assert.Equal(t, "claude-3-5-haiku-latest", client.Model())
	})

	t.Run("unsupported provider", func(t *testing.T) {
		_, err := factory.CreateLLM(ctx, Provider("bogus"), map[string]string{"api_key": "k"})
		require.Error(t, err)
	})
}
