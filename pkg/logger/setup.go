package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/fast-items-service/pkg/config"
	"github.com/rs/zerolog"
)

// Configure inicializa o logger global baseando-se na configuração carregada.
func Configure(cfg config.LoggingConf) zerolog.Logger {
	return New(cfg, os.Stdout)
}

// New cria o logger escrevendo em out. Útil para capturar a saída em testes.
func New(cfg config.LoggingConf, out io.Writer) zerolog.Logger {
	// Define o nível de log (default: info)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// JSON para produção, Console "bonito" para local se solicitado
	output := out
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}

// ForService anexa os campos fixos do serviço a todas as entradas.
func ForService(l zerolog.Logger, svc config.ServiceDetails) zerolog.Logger {
	return l.With().
		Str("service", svc.Name).
		Str("runtime", svc.Runtime).
		Logger()
}
