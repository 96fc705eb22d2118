// Package logger builds the structured loggers used across phoneinput.
//
// Library components (directory, input, picker) default to [NewNope] and accept a
// logger through their WithLogger options. Services build a JSON logger with
// [New] or, when error tracking is wanted, [NewWithSentry].
//
// # Context Extractors
//
// A [ContextExtractor] pulls one attribute out of a context on every log call.
// The package ships extractors for the request ID and the resolved locale:
//
//	log := logger.New(
//		[]logger.Option{logger.WithLevel(slog.LevelDebug)},
//		logger.RequestIDExtractor(),
//		logger.LocaleExtractor(),
//	)
//
//	ctx := logger.WithRequestID(ctx, "req-1")
//	ctx = logger.WithLocale(ctx, "fr-CA")
//	log.InfoContext(ctx, "countries listed", slog.Int("count", 242))
//	// {"level":"INFO","msg":"countries listed","count":242,"request_id":"req-1","locale":"fr-CA"}
//
// # Sentry
//
// [NewWithSentry] fans records out to stdout and Sentry. With an empty DSN, or
// when the SDK fails to initialize, it falls back to stdout only.
package logger
