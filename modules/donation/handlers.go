package donation

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/createrainforest/bosweb/handler"
	"github.com/createrainforest/bosweb/pkg/binder"
	"github.com/createrainforest/bosweb/pkg/email"
	"github.com/createrainforest/bosweb/pkg/formcheck"
	"github.com/createrainforest/bosweb/pkg/locale"
	"github.com/createrainforest/bosweb/pkg/logger"
	"github.com/createrainforest/bosweb/pkg/popup"
	"github.com/createrainforest/bosweb/pkg/ratelimiter"
	"github.com/createrainforest/bosweb/pkg/requestid"
	"github.com/createrainforest/bosweb/pkg/token"
	"github.com/createrainforest/bosweb/pkg/validator"
)

// Handlers serves the donation page form checks.
type Handlers struct {
	cfg          Config
	log          *slog.Logger
	mailer       *InfoMailer
	transfer     *MailTransfer
	signer       *token.Signer
	limiter      ratelimiter.RateLimiter
	language     locale.Extractor
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures Handlers.
type Option func(*Handlers)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handlers) {
		if log != nil {
			h.log = log
		}
	}
}

// WithLimiter limits info mail requests per client IP.
func WithLimiter(l ratelimiter.RateLimiter) Option {
	return func(h *Handlers) {
		h.limiter = l
	}
}

// WithErrorHandler replaces the error handler built from the logger.
func WithErrorHandler(eh handler.ErrorHandler[handler.Context]) Option {
	return func(h *Handlers) {
		h.errorHandler = eh
	}
}

// WithLocaleExtractor sets how the visitor's language is read from a request.
// The default is locale.DefaultExtractor.
func WithLocaleExtractor(extr locale.Extractor) Option {
	return func(h *Handlers) {
		if extr != nil {
			h.language = extr
		}
	}
}

// WithTransferRules replaces the built-in mail transfer rule sets.
func WithTransferRules(sets map[string]TransferRules) Option {
	return func(h *Handlers) {
		if sets != nil {
			h.transfer = NewMailTransfer(sets)
		}
	}
}

// New creates the donation handlers. Info mails go out through sender.
func New(cfg Config, sender email.EmailSender, opts ...Option) (*Handlers, error) {
	cfg = cfg.withDefaults()
	mailer, err := NewInfoMailer(sender, cfg)
	if err != nil {
		return nil, err
	}

	secret := cfg.InfoRequestSecret
	if secret == "" {
		secret = rand.Text()
	}
	signer, err := token.NewSigner(secret)
	if err != nil {
		return nil, err
	}

	h := &Handlers{
		cfg:      cfg,
		log:      slog.Default(),
		mailer:   mailer,
		signer:   signer,
		language: locale.DefaultExtractor(),
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.transfer == nil {
		sets, err := DefaultTransferRules()
		if err != nil {
			return nil, err
		}
		h.transfer = NewMailTransfer(sets)
	}
	h.log = h.log.With(logger.Component("donation"))
	if h.errorHandler == nil {
		h.errorHandler = handler.NewErrorHandler(h.log, handler.ErrorHandlerConfig{})
	}
	return h, nil
}

type formRequest struct {
	Values url.Values `form:"*"`
}

type transferRequest struct {
	Lang   string     `path:"lang"`
	Values url.Values `form:"*"`
}

type infoMailRequest struct {
	Email string `query:"email"`
	Token string `query:"token"`
}

type certificateRequest struct {
	NumSqm string `query:"numsqm"`
}

type langRequest struct {
	Target string `query:"target" form:"target"`
}

type popupRequest struct {
	Window string `path:"window"`
	URL    string `query:"url"`
}

// Router returns the donation routes.
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(locale.Middleware(h.language))

	r.Post("/profile", wrap(h, h.profile, binder.Form()))
	r.Post("/order/transfer", wrap(h, h.orderTransfer, binder.Form()))
	r.Post("/order/disclaimer", wrap(h, h.disclaimer))
	r.Post("/shipping", wrap(h, h.shipping, binder.Form()))
	r.Post("/info", wrap(h, h.info, binder.Form()))
	r.Post("/transfer", wrap(h, h.mailTransfer, binder.Form()))
	r.Post("/transfer/{lang}", wrap(h, h.mailTransfer, binder.Path(chi.URLParam), binder.Form()))
	r.Get("/certificate", wrap(h, h.certificate, binder.Query()))
	r.Get("/lang", wrap(h, h.lang, binder.Query()))
	r.Post("/lang", wrap(h, h.lang, binder.Query(), binder.Form()))
	r.Get("/popup/{window}", wrap(h, h.popup, binder.Path(chi.URLParam), binder.Query()))

	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimiter.Middleware(h.limiter,
				ratelimiter.Prefixed("info", ratelimiter.ByClientIP),
				ratelimiter.WithExceededHandler(http.HandlerFunc(h.infoMailLimited)),
				ratelimiter.WithErrorHandler(http.HandlerFunc(h.infoMailUnavailable)),
			))
		}
		r.Get("/info-request", wrap(h, h.infoMail, binder.Query()))
	})

	return r
}

func wrap[R any](h *Handlers, fn handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(fn,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](h.errorHandler),
	)
}

func (h *Handlers) profile(ctx handler.Context, req formRequest) handler.Response {
	if err := CheckProfileSetup(ProfileSchema.Bind(req.Values)); err != nil {
		return h.reject(ctx, ProfileForm, err)
	}
	return handler.Do(handler.OpenWindow(popup.InfoSystem, ""))
}

func (h *Handlers) orderTransfer(ctx handler.Context, req formRequest) handler.Response {
	if err := CheckTransfer(OrderSchema.Bind(req.Values)); err != nil {
		return h.reject(ctx, OrderForm, err)
	}
	return proceed(h.cfg.OrderNextURL)
}

func (h *Handlers) disclaimer(ctx handler.Context, _ formRequest) handler.Response {
	return handler.Do(
		handler.SetChecked(OrderForm, DisclaimerField, true),
		handler.OpenWindow(popup.Detail, DisclaimerURL),
	)
}

func (h *Handlers) shipping(ctx handler.Context, req formRequest) handler.Response {
	if err := CheckShippingInfo(ShippingSchema.Bind(req.Values)); err != nil {
		return h.reject(ctx, ShippingForm, err)
	}
	return proceed(h.cfg.ShippingNextURL)
}

// info answers the info mail form. The mail itself is requested by the
// mail window once the visitor confirms, with a link signed for the address.
func (h *Handlers) info(ctx handler.Context, req formRequest) handler.Response {
	addr := InfoRequestSchema.Bind(req.Values).Value(EmailField)
	if err := CheckInfoRequest(addr, h.cfg.ServiceMailbox); err != nil {
		return h.reject(ctx, InfoRequestForm, err)
	}
	tok, err := h.signer.Sign(addr, h.cfg.InfoRequestTTL)
	if err != nil {
		return handler.Fail(err)
	}
	return handler.Do(handler.Confirm(InfoRequestPrompt(addr),
		handler.SetValue(InfoRequestForm, EmailField, ""),
		handler.OpenWindow(popup.Mail, InfoRequestURL(addr, tok)),
	))
}

// infoMail sends the info mail for a link issued by info. Links without a
// valid token for the address send nothing.
func (h *Handlers) infoMail(ctx handler.Context, req infoMailRequest) handler.Response {
	if err := h.signer.Verify(req.Token, req.Email); err != nil {
		h.log.WarnContext(ctx, "info mail link refused",
			logger.RequestID(requestid.FromContext(ctx)),
			logger.Error(err),
			logger.Event("info_mail_link_refused"),
		)
		return handler.TemplWithStatus(http.StatusForbidden,
			mailStatus(false, "Dieser Link ist ungültig oder abgelaufen. Bitte fordern Sie die Informationen erneut an."),
			handler.WithTarget("#"+MailStatusID),
		)
	}

	err := h.mailer.Send(ctx, req.Email)
	switch {
	case err == nil:
		h.log.InfoContext(ctx, "info mail sent",
			logger.RequestID(requestid.FromContext(ctx)),
			logger.Event("info_mail_sent"),
		)
		return handler.Templ(
			mailStatus(true, fmt.Sprintf("Vielen Dank! Die Informationen wurden an %s verschickt.", req.Email)),
			handler.WithTarget("#"+MailStatusID),
		)
	case validator.IsValidationError(err):
		h.logRejected(ctx, InfoRequestForm, locale.FromContext(ctx), err)
		return handler.TemplWithStatus(http.StatusUnprocessableEntity,
			mailStatus(false, firstMessage(err)),
			handler.WithTarget("#"+MailStatusID),
		)
	default:
		h.log.ErrorContext(ctx, "info mail failed",
			logger.RequestID(requestid.FromContext(ctx)),
			logger.Error(err),
			logger.Event("info_mail_failed"),
		)
		return handler.TemplWithStatus(http.StatusBadGateway,
			mailStatus(false, h.unavailableMessage()),
			handler.WithTarget("#"+MailStatusID),
		)
	}
}

func (h *Handlers) infoMailLimited(w http.ResponseWriter, r *http.Request) {
	resp := handler.TemplWithStatus(http.StatusTooManyRequests,
		mailStatus(false, "Sie haben bereits mehrere Anfragen geschickt. Bitte versuchen Sie es später noch einmal."),
		handler.WithTarget("#"+MailStatusID),
	)
	h.render(w, r, resp)
}

func (h *Handlers) infoMailUnavailable(w http.ResponseWriter, r *http.Request) {
	h.log.ErrorContext(r.Context(), "rate limit check failed",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Event("rate_limit_error"),
	)
	h.render(w, r, handler.TemplWithStatus(http.StatusServiceUnavailable,
		mailStatus(false, h.unavailableMessage()),
		handler.WithTarget("#"+MailStatusID),
	))
}

func (h *Handlers) unavailableMessage() string {
	return "Ihre Anfrage konnte leider nicht verschickt werden. Bitte senden Sie uns Ihre Anfrage per Email an " + h.cfg.ServiceMailbox
}

// mailTransfer checks the mail transfer form in the language named by the
// path, or in the visitor's language when the path names none. Languages
// whose rules lock first keep the button disabled even when the form is
// rejected.
func (h *Handlers) mailTransfer(ctx handler.Context, req transferRequest) handler.Response {
	lang := req.Lang
	if lang == "" {
		lang = h.transferLanguage(ctx)
	}
	set, err := h.transfer.Check(lang, MailTransferSchema.Bind(req.Values))
	if errors.Is(err, ErrUnknownTransferLocale) {
		return handler.Fail(errors.Join(handler.ErrNotFound, err))
	}
	if err != nil {
		h.logRejected(ctx, MailTransferForm, lang, err)
		alert := handler.Alert(formcheck.Alert(err))
		if set.LockFirst {
			return handler.Reject(handler.LockSubmit(MailTransferForm, ""), alert)
		}
		return handler.Reject(alert)
	}

	if h.cfg.TransferNextURL != "" {
		return handler.Redirect(h.cfg.TransferNextURL)
	}
	return handler.Do(handler.LockSubmit(MailTransferForm, set.LockLabel))
}

// transferLanguage is the visitor's language, or locale.Default when no mail
// transfer rules exist for it.
func (h *Handlers) transferLanguage(ctx handler.Context) string {
	lang := locale.FromContext(ctx)
	if _, err := h.transfer.Rules(lang); err != nil {
		return locale.Default
	}
	return lang
}

func (h *Handlers) certificate(ctx handler.Context, req certificateRequest) handler.Response {
	return handler.Templ(certificateInfo(PrintedCertificate(req.NumSqm)), handler.WithTarget("#"+CertificateID))
}

// lang follows the language menu to the selected page.
func (h *Handlers) lang(ctx handler.Context, req langRequest) handler.Response {
	target, err := locale.JumpTarget(ctx.Request(), req.Target)
	if err != nil {
		return handler.Fail(errors.Join(handler.ErrBadRequest, err))
	}
	return handler.Redirect(target)
}

func (h *Handlers) popup(ctx handler.Context, req popupRequest) handler.Response {
	w, err := popup.Lookup(req.Window)
	if err != nil {
		return handler.Fail(errors.Join(handler.ErrNotFound, err))
	}
	if req.URL != "" {
		if _, err := locale.JumpTarget(ctx.Request(), req.URL); err != nil {
			return handler.Fail(errors.Join(handler.ErrBadRequest, err))
		}
	}
	return handler.Do(handler.OpenWindow(w, req.URL))
}

// reject answers a failed check with its message.
func (h *Handlers) reject(ctx handler.Context, formName string, err error) handler.Response {
	if !validator.IsValidationError(err) {
		return handler.Fail(err)
	}
	h.logRejected(ctx, formName, locale.FromContext(ctx), err)
	return handler.Reject(handler.Alert(firstMessage(err)))
}

func (h *Handlers) logRejected(ctx handler.Context, formName, lang string, err error) {
	h.log.LogAttrs(ctx, slog.LevelInfo, "form rejected",
		logger.RequestID(requestid.FromContext(ctx)),
		logger.Form(formName),
		logger.Locale(lang),
		logger.Failures(validator.ExtractValidationErrors(err).Fields()...),
		logger.Event("form_rejected"),
	)
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, resp handler.Response) {
	if err := resp.Render(w, r); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render response",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Event("render_error"),
		)
	}
}

// proceed lets an accepted form continue to next, or leaves the page alone
// when next is empty.
func proceed(next string) handler.Response {
	if next == "" {
		return handler.Empty()
	}
	return handler.Redirect(next)
}

func firstMessage(err error) string {
	msgs := formcheck.Messages(err)
	if len(msgs) == 0 {
		return err.Error()
	}
	return msgs[0]
}
