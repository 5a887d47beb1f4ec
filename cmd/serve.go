package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/helmcode/triage-ai/pkg/analyzer"
	slackpkg "github.com/helmcode/triage-ai/pkg/slack"
	"github.com/helmcode/triage-ai/pkg/web"
)

var (
	addr  string
	debug bool
)

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the triage web UI",
		Long: `Serve the two-page web UI and the JSON API.

The form at / collects an error log and optional code snippet; POST /analyze
renders the triage result. POST /api/v1/analyze accepts and returns JSON.

When SLACK_BOT_TOKEN and SLACK_CHANNEL_ID are set, each completed triage is
also posted to the configured Slack channel.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	cmd.Flags().BoolVar(&debug, "debug", false, "Run gin in debug mode")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (gemini, claude, openai); defaults to LLM_PROVIDER or gemini")
	cmd.Flags().StringVar(&modelName, "model", "", "Model identifier override")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	triager, err := analyzer.NewFromEnv(cmd.Context(), provider, modelName)
	if err != nil {
		return err
	}

	slackCfg := slackpkg.Config{
		BotToken:  os.Getenv("SLACK_BOT_TOKEN"),
		ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
	}
	if slackCfg.Enabled() {
		log.Info().Str("channel", slackCfg.ChannelID).Msg("Slack notifications enabled")
	} else {
		log.Info().Msg("Slack notifications disabled (SLACK_BOT_TOKEN / SLACK_CHANNEL_ID not set)")
	}

	log.Info().Str("model", triager.Model()).Msg("Triage analyzer ready")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := web.New(triager, slackCfg)
	return server.Run(ctx, addr)
}
