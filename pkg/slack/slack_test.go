package slack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{BotToken: "xoxb-123"}.Enabled())
	assert.False(t, Config{ChannelID: "C123"}.Enabled())
	assert.True(t, Config{BotToken: "xoxb-123", ChannelID: "C123"}.Enabled())
}

func TestSummaryField(t *testing.T) {
	assert.Equal(t, "_none_", summaryField(""))
	assert.Equal(t, "short", summaryField("short"))

	long := strings.Repeat("x", 5000)
	got := summaryField(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Less(t, len([]rune(got)), 3000)
}
