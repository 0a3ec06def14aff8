package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	Logger{Level: "warn", Format: "json"}.SetupWriter(&buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Msg("hidden")
	log.Warn().Str("shape", "box").Msg("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"shape":"box"`)
	require.Contains(t, out, `"message":"shown"`)
}

func TestLevelFallback(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, Logger{}.level())
	require.Equal(t, zerolog.InfoLevel, Logger{Level: "loud"}.level())
	require.Equal(t, zerolog.DebugLevel, Logger{Level: "DEBUG"}.level())
	require.Equal(t, zerolog.Disabled, Logger{Level: "disabled"}.level())
}
