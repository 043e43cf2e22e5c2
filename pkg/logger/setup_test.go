package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/raywall/fast-items-service/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("Default Level Info", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("Custom Level Debug", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "DEBUG"})
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("Invalid Level Falls Back To Info", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "verbose"})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}

func TestNew_Output(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(config.LoggingConf{Enabled: true, Format: "json"}, &buf)
		l = ForService(l, config.ServiceDetails{Name: "items-api", Runtime: "local"})
		l.Info().Str("item_id", "abc").Msg("item criado")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "item criado", entry["message"])
		assert.Equal(t, "items-api", entry["service"])
		assert.Equal(t, "local", entry["runtime"])
		assert.Equal(t, "abc", entry["item_id"])
		assert.Contains(t, entry, "time")
	})

	t.Run("Console", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(config.LoggingConf{Enabled: true, Format: "console"}, &buf)
		l.Info().Msg("servidor iniciado")

		assert.Contains(t, buf.String(), "servidor iniciado")
		assert.False(t, json.Valid(buf.Bytes()))
	})

	t.Run("Disabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(config.LoggingConf{Enabled: false}, &buf)
		l.Error().Msg("não deve aparecer")

		assert.Empty(t, buf.String())
	})
}
