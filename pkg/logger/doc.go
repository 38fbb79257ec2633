// Package logger builds the server's *slog.Logger and provides the attribute
// helpers used across packages so keys stay consistent.
//
// New applies functional options; WithEnvironment picks text output at
// DEBUG for development and JSON at INFO for staging and production. The
// returned logger is wrapped in LogHandlerDecorator, which runs registered
// ContextExtractor callbacks on every record, so request-scoped values such
// as the request ID end up in every line logged with a request context.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.ServiceName),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "form rejected",
//	    logger.Form("mailtransfer"),
//	    logger.Failures(verrs.Fields()...),
//	)
package logger
