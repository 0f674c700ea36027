package config

import (
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrymomot/jwtkit/pkg/signer"
)

// Signing holds the settings needed to issue and verify tokens.
type Signing struct {
	Algorithm      string        `env:"JWT_ALGORITHM" envDefault:"HS256"`
	Secret         string        `env:"JWT_SECRET"`
	SecretInfo     string        `env:"JWT_SECRET_INFO"`
	PrivateKeyFile string        `env:"JWT_PRIVATE_KEY_FILE"`
	PublicKeyFile  string        `env:"JWT_PUBLIC_KEY_FILE"`
	Issuer         string        `env:"JWT_ISSUER"`
	TTL            time.Duration `env:"JWT_TTL" envDefault:"1h"`
	Leeway         time.Duration `env:"JWT_LEEWAY" envDefault:"0s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	Environment    string        `env:"APP_ENV" envDefault:"development"`
}

// NewSignerVerifier builds the algorithm instance described by cfg.
//
// HMAC algorithms use JWT_SECRET. When JWT_SECRET_INFO is set the secret
// is treated as a master key and a purpose-bound key is derived from it
// with HKDF. RS256/RS384/RS512 and EdDSA load a PEM private key from
// JWT_PRIVATE_KEY_FILE (PKCS #8, or PKCS #1 for RSA).
func NewSignerVerifier(cfg Signing) (signer.SignerVerifier, error) {
	switch cfg.Algorithm {
	case signer.HS256, signer.HS384, signer.HS512:
		return newHMAC(cfg)
	case signer.RS256, signer.RS384, signer.RS512:
		key, err := loadPrivateKey(cfg.PrivateKeyFile)
		if err != nil {
			return nil, err
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: %s requires an RSA key, got %T", ErrInvalidPrivateKey, cfg.Algorithm, key)
		}
		return signer.NewRSASigner(cfg.Algorithm, rsaKey)
	case signer.EdDSA:
		key, err := loadPrivateKey(cfg.PrivateKeyFile)
		if err != nil {
			return nil, err
		}
		edKey, ok := key.(ed25519.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: EdDSA requires an Ed25519 key, got %T", ErrInvalidPrivateKey, key)
		}
		return signer.NewEdDSASigner(edKey)
	default:
		return nil, fmt.Errorf("%w: %q", signer.ErrUnsupportedAlgorithm, cfg.Algorithm)
	}
}

// NewVerifier builds a verify-only algorithm instance. For RS256/RS384/RS512
// and EdDSA it reads the PEM public key from JWT_PUBLIC_KEY_FILE (PKIX, or
// PKCS #1 for RSA) and needs no private key. Without a public key file, and
// for HMAC algorithms, it falls back to NewSignerVerifier.
func NewVerifier(cfg Signing) (signer.Verifier, error) {
	if cfg.PublicKeyFile == "" {
		return NewSignerVerifier(cfg)
	}

	switch cfg.Algorithm {
	case signer.RS256, signer.RS384, signer.RS512:
		key, err := loadPublicKey(cfg.PublicKeyFile)
		if err != nil {
			return nil, err
		}
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: %s requires an RSA key, got %T", ErrInvalidPublicKey, cfg.Algorithm, key)
		}
		return signer.NewRSAVerifier(cfg.Algorithm, rsaKey)
	case signer.EdDSA:
		key, err := loadPublicKey(cfg.PublicKeyFile)
		if err != nil {
			return nil, err
		}
		edKey, ok := key.(ed25519.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: EdDSA requires an Ed25519 key, got %T", ErrInvalidPublicKey, key)
		}
		return signer.NewEdDSAVerifier(edKey)
	default:
		return NewSignerVerifier(cfg)
	}
}

var derivedKeyLength = map[string]int{
	signer.HS256: 32,
	signer.HS384: 48,
	signer.HS512: 64,
}

func newHMAC(cfg Signing) (*signer.HMAC, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}

	key := []byte(cfg.Secret)
	if cfg.SecretInfo != "" {
		derived, err := signer.DeriveKey(key, []byte(cfg.SecretInfo), derivedKeyLength[cfg.Algorithm])
		if err != nil {
			return nil, err
		}
		key = derived
	}

	return signer.NewHMAC(cfg.Algorithm, key)
}

func loadPrivateKey(path string) (any, error) {
	if path == "" {
		return nil, ErrMissingPrivateKey
	}

	block, err := readPEM(path, ErrInvalidPrivateKey)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	return nil, fmt.Errorf("%w: unsupported PEM block %q", ErrInvalidPrivateKey, block.Type)
}

func loadPublicKey(path string) (any, error) {
	block, err := readPEM(path, ErrInvalidPublicKey)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	return nil, fmt.Errorf("%w: unsupported PEM block %q", ErrInvalidPublicKey, block.Type)
}

func readPEM(path string, sentinel error) (*pem.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(sentinel, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in %s", sentinel, path)
	}

	return block, nil
}
