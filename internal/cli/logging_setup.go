package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/config"
	"github.com/rshade/batchview/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetGlobalConfig().Logging

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		loggingCfg.Level = level
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" && !filepath.IsAbs(loggingCfg.File) {
		loggingCfg.File = filepath.Join(config.Dir(), loggingCfg.File)
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")

	return result
}

// logSession tracks the log output opened for one command run.
type logSession struct {
	ctx    context.Context //nolint:containedctx // the finishing log line needs the run's trace ID
	name   string
	result *logging.LogPathResult
}

func (s *logSession) start(cmd *cobra.Command, result logging.LogPathResult) {
	s.ctx = cmd.Context()
	s.name = cmd.Name()
	s.result = &result
}

// close logs the end of the command and closes the log file handle, if any.
// Calls after the first are no-ops.
func (s *logSession) close() error {
	if s.result == nil {
		return nil
	}
	result := s.result
	s.result = nil
	logging.FromContext(s.ctx).Debug().Ctx(s.ctx).Str("command", s.name).Msg("command finished")
	return result.Close()
}
