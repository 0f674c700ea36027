package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")

	// ErrConfigNotLoaded is returned when a config type could not be stored in the cache.
	ErrConfigNotLoaded = errors.New("config: configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("config: nil pointer provided to config loader")

	// ErrMissingSecret is returned when an HMAC algorithm is configured without JWT_SECRET.
	ErrMissingSecret = errors.New("config: JWT_SECRET is required for HMAC algorithms")

	// ErrMissingPrivateKey is returned when an asymmetric algorithm is configured without JWT_PRIVATE_KEY_FILE.
	ErrMissingPrivateKey = errors.New("config: JWT_PRIVATE_KEY_FILE is required for asymmetric algorithms")

	// ErrInvalidPrivateKey is returned when the private key file holds no usable PEM key.
	ErrInvalidPrivateKey = errors.New("config: invalid private key")

	// ErrInvalidPublicKey is returned when the public key file holds no usable PEM key.
	ErrInvalidPublicKey = errors.New("config: invalid public key")
)
