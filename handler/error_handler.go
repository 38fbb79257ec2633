package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/createrainforest/bosweb/pkg/binder"
	"github.com/createrainforest/bosweb/pkg/formcheck"
	"github.com/createrainforest/bosweb/pkg/logger"
	"github.com/createrainforest/bosweb/pkg/requestid"
	"github.com/createrainforest/bosweb/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the page shown for failed plain requests other than
	// rejected form checks. Without it a text error is written.
	ErrorPage func(ErrorPageParams) templ.Component

	// AlertPreamble opens the alert listing failed form checks.
	// Defaults to formcheck.Preamble.
	AlertPreamble string
}

// ErrorInfo is the classification of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
	Validation bool
}

// ClassifyError maps err to a status code and visitor-facing message.
// Failed form checks become 422 with the alert text, HTTPErrors keep their
// code, binding failures are 400 and anything else is 500.
func ClassifyError(err error, preamble string) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = formcheck.AlertWith(preamble, err)
		info.Validation = true
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	case isBindError(err):
		info.StatusCode = http.StatusBadRequest
		info.Message = ErrBadRequest.Key
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

func isBindError(err error) bool {
	return errors.Is(err, binder.ErrInvalidForm) ||
		errors.Is(err, binder.ErrInvalidQuery) ||
		errors.Is(err, binder.ErrInvalidPath) ||
		errors.Is(err, binder.ErrMissingContentType) ||
		errors.Is(err, binder.ErrUnsupportedMediaType)
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	attrs := []slog.Attr{
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		attrs = append(attrs, logger.Failures(verrs.Fields()...))
	}
	log.LogAttrs(r.Context(), info.LogLevel, "request error", attrs...)
}

// NewErrorHandler creates the error handler shared by all routes.
// Failed form checks are answered with an alert, delivered through
// Reject. Other errors render cfg.ErrorPage for plain requests and an alert
// for Datastar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.AlertPreamble == "" {
		cfg.AlertPreamble = formcheck.Preamble
	}

	return func(ctx Context, err error) {
		w, r := ctx.ResponseWriter(), ctx.Request()
		info := ClassifyError(err, cfg.AlertPreamble)
		logError(log, ctx, err, info)

		var response Response
		switch {
		case info.Validation:
			response = Reject(Alert(info.Message))
		case IsDataStar(r):
			response = Do(Alert(info.Message))
		case cfg.ErrorPage != nil:
			response = TemplWithStatus(info.StatusCode, cfg.ErrorPage(ErrorPageParams{
				Error:      info.Message,
				StatusCode: info.StatusCode,
				RequestID:  requestid.FromContext(r.Context()),
			}))
		default:
			http.Error(w, info.Message, info.StatusCode)
			return
		}

		if renderErr := response.Render(w, r); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
