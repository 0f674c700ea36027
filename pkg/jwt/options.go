package jwt

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/jwtkit/pkg/codec"
	"github.com/dmitrymomot/jwtkit/pkg/validator"
)

// Option configures a Generator, Parser or Service. Options that only make
// sense for parsing are ignored by the Generator.
type Option func(*options)

type options struct {
	json       codec.JSON
	base64     codec.Base64
	validator  *validator.Validator
	timeChecks bool
	leeway     time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

func defaultOptions() *options {
	return &options{
		json:   codec.StrictJSON{},
		base64: codec.SafeBase64{},
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithJSON replaces the JSON capability. Nil is ignored.
func WithJSON(j codec.JSON) Option {
	return func(o *options) {
		if j != nil {
			o.json = j
		}
	}
}

// WithBase64 replaces the Base64URL capability. Nil is ignored.
func WithBase64(b codec.Base64) Option {
	return func(o *options) {
		if b != nil {
			o.base64 = b
		}
	}
}

// WithValidator runs v against the claims of every token whose signature
// has been verified.
func WithValidator(v *validator.Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

// WithTimeValidation checks the exp, nbf and iat claims against the current
// time on every Parse call, tolerating the given clock skew.
func WithTimeValidation(leeway time.Duration) Option {
	return func(o *options) {
		o.timeChecks = true
		o.leeway = max(leeway, 0)
	}
}

// WithClock overrides the time source used by WithTimeValidation.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used to report rejected tokens at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
