package slack

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"

	"github.com/helmcode/triage-ai/pkg/model"
)

type Config struct {
	BotToken  string
	ChannelID string
}

// Enabled reports whether notifications are configured. Both values are
// required; anything less disables the integration.
func (c Config) Enabled() bool {
	return c.BotToken != "" && c.ChannelID != ""
}

// SendSummary posts the four triage fields to the configured channel.
func SendSummary(result model.TriageResult, config Config) error {
	api := slack.New(config.BotToken)

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(
			"plain_text",
			"🐛 Bug Triage Result",
			false, false,
		)),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*Log Analysis:*\n%s", summaryField(result.LogAnalysis)),
				false, false),
			nil, nil,
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*Root Cause:*\n%s", summaryField(result.RootCause)),
				false, false),
			nil, nil,
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*Fix Suggestion:*\n%s", summaryField(result.FixSuggestion)),
				false, false),
			nil, nil,
		),
	}

	if result.FixCode != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*Fix Code:*\n```%s```", summaryField(result.FixCode)),
				false, false),
			nil, nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject("mrkdwn",
			fmt.Sprintf("Triaged at: %s", time.Now().UTC().Format(time.RFC1123)),
			false, false),
	))

	_, msgTimestamp, err := api.PostMessage(
		config.ChannelID,
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		log.Err(err).Str("channel", config.ChannelID).Msg("Failed to post Slack message")
		return err
	}

	log.Info().
		Str("channel", config.ChannelID).
		Str("timestamp", msgTimestamp).
		Msg("Triage summary posted to Slack")
	return nil
}

// Slack section blocks cap out at 3000 characters of text.
func summaryField(text string) string {
	const maxLen = 2900
	if text == "" {
		return "_none_"
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "…"
}
