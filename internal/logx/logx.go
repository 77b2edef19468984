// Package logx configures the process-wide zerolog logger.
package logx

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Logs always go to stderr so stdout
// stays clean for rendered payloads and the MCP stdio protocol. The level
// comes from the verbosity flag, falling back to MRSUMMARY_LOG_LEVEL.
func Setup(verbosity string) {
	if verbosity == "" {
		verbosity = os.Getenv("MRSUMMARY_LOG_LEVEL")
	}

	level := zerolog.WarnLevel
	switch strings.ToLower(verbosity) {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn", "warning", "":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
}
