// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which injects attributes pulled from the
// context (for example the run identifier of a CLI invocation) into every
// record. Records go to stderr unless WithOutput says otherwise.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithService("schemacheck"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "table described",
//	    logger.Table("users"),
//	    logger.Count(len(table.Columns)),
//	)
//
// ParseLevel turns configuration strings into slog levels. Discard returns a
// logger that drops everything, the default of library packages.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally:
//
//	log.Info("done", logger.Error(err))
package logger
