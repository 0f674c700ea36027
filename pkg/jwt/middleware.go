package jwt

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

// TokenParser is satisfied by *Parser and *Service.
type TokenParser interface {
	Parse(token string) (Claims, error)
}

// TokenExtractorFunc defines a function that extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SkipFunc defines a function that determines whether to skip JWT validation for a request.
type SkipFunc func(r *http.Request) bool

// ErrorHandlerFunc writes the response for a rejected request.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures JWT middleware behavior.
type MiddlewareConfig struct {
	Parser       TokenParser
	Extractor    TokenExtractorFunc // defaults to BearerTokenExtractor
	Skip         SkipFunc
	ErrorHandler ErrorHandlerFunc // defaults to a bare 401
	Logger       *slog.Logger
}

// Middleware creates JWT middleware with default Bearer token extraction.
// Verified claims are injected into the request context.
func Middleware(parser TokenParser) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{
		Parser:    parser,
		Extractor: BearerTokenExtractor,
	})
}

// MiddlewareWithConfig creates JWT middleware with custom configuration.
// It panics when no parser is configured.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Parser == nil {
		panic("jwt: middleware requires a parser")
	}
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}
	if config.ErrorHandler == nil {
		config.ErrorHandler = unauthorized
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := config.Extractor(r)
			if err != nil {
				config.Logger.DebugContext(r.Context(), "token not found", logger.Component("jwt.middleware"), logger.Error(err))
				config.ErrorHandler(w, r, err)
				return
			}

			claims, err := config.Parser.Parse(tokenString)
			if err != nil {
				config.Logger.InfoContext(r.Context(), "token rejected",
					logger.Component("jwt.middleware"),
					logger.Group("request",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					),
					logger.Error(err),
				)
				config.ErrorHandler(w, r, err)
				return
			}

			ctx := r.Context()
			ctx = SetToken(ctx, tokenString)
			ctx = SetClaims(ctx, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized does not echo err: parse errors describe why a forged token
// failed.
func unauthorized(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>" headers (RFC 6750).
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
		return "", ErrMissingToken
	}

	return token, nil
}

// CookieTokenExtractor creates a token extractor for cookie-based transport.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}
}

// QueryTokenExtractor creates a token extractor for URL query parameters.
// Generally discouraged due to token exposure in logs and referrer headers.
func QueryTokenExtractor(paramName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// HeaderTokenExtractor creates a token extractor for custom headers.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}
