package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/pkg/logger"
	"github.com/vibecoders/site/pkg/requestid"
)

// ErrorInfo is the outcome of Classify.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Type       string // toast flavour: "error", "warning" or "info"
	LogLevel   slog.Level
}

// Classify maps err to a status, a dictionary key and a severity.
// Anything that is not an HTTPError is an internal error.
func Classify(err error) ErrorInfo {
	httpErr := ErrInternalServerError
	_ = errors.As(err, &httpErr)

	info := ErrorInfo{StatusCode: httpErr.Code, Key: httpErr.Key, Type: "info", LogLevel: slog.LevelInfo}
	if info.StatusCode >= http.StatusInternalServerError {
		info.Type, info.LogLevel = "error", slog.LevelError
	} else if info.StatusCode >= http.StatusBadRequest {
		info.Type, info.LogLevel = "warning", slog.LevelWarn
	}
	return info
}

// ErrorPageParams feeds the full-page error view.
type ErrorPageParams struct {
	Locale     i18n.Locale
	StatusCode int
	Key        string
	Message    string
	RequestID  string
	Path       string
}

// ErrorToastParams feeds the toast patched into DataStar pages.
type ErrorToastParams struct {
	Locale    i18n.Locale
	Message   string
	Type      string
	RequestID string
}

// ErrorHandlerConfig wires the views into NewErrorHandler. Every field is
// optional.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component
	// Translate turns an error key into a message; nil shows the key.
	Translate func(locale i18n.Locale, key string) string
	// ToastTarget defaults to "#toast-container"; toasts are prepended.
	ToastTarget string
}

// NewErrorHandler logs the error at its classified level and answers with
// the error page, or with a toast patch for DataStar requests. Without a
// page component it falls back to plain text; without a toast component
// DataStar requests get an empty response.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	translate := cfg.Translate
	if translate == nil {
		translate = func(_ i18n.Locale, key string) string { return key }
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		locale := ctx.Locale()
		info := Classify(err)
		datastarReq := IsDataStar(r)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			logger.Path(r.URL.Path),
			logger.Locale(locale.String()),
			slog.Bool("datastar", datastarReq),
		)

		message := translate(locale, info.Key)
		var resp Response
		switch {
		case datastarReq && cfg.ErrorToast == nil:
			return
		case datastarReq:
			resp = Templ(cfg.ErrorToast(ErrorToastParams{
				Locale:    locale,
				Message:   message,
				Type:      info.Type,
				RequestID: reqID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend))
		case cfg.ErrorPage == nil:
			http.Error(ctx.ResponseWriter(), message, info.StatusCode)
			return
		default:
			resp = Templ(cfg.ErrorPage(ErrorPageParams{
				Locale:     locale,
				StatusCode: info.StatusCode,
				Key:        info.Key,
				Message:    message,
				RequestID:  reqID,
				Path:       r.URL.Path,
			}), WithStatus(info.StatusCode))
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "cannot render error response",
				logger.RequestID(reqID), logger.Error(renderErr))
		}
	}
}
