// Package config loads application settings from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any struct with `env` tags and caches
//     the result per type, so each type is parsed at most once.
//   - Reload and ResetCache drop cached values, mostly for tests.
//
// The Signing struct describes how tokens are signed, and NewSignerVerifier
// turns it into a ready algorithm instance. NewVerifier does the same for
// verify-only callers and accepts a public key file instead:
//
//	var cfg config.Signing
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	sv, err := config.NewSignerVerifier(cfg)
//	if err != nil {
//		return err
//	}
//	svc, err := jwt.New(sv, jwt.WithTimeValidation(cfg.Leeway))
//
// Recognised variables: JWT_ALGORITHM (default HS256), JWT_SECRET,
// JWT_SECRET_INFO, JWT_PRIVATE_KEY_FILE, JWT_PUBLIC_KEY_FILE, JWT_ISSUER,
// JWT_TTL (default 1h), JWT_LEEWAY, LOG_LEVEL and APP_ENV.
//
// Errors wrap the package sentinels (ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer, ErrMissingSecret, ErrMissingPrivateKey,
// ErrInvalidPrivateKey, ErrInvalidPublicKey) and can be compared with
// errors.Is.
package config
