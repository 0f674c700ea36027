package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/jwtkit/pkg/config"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
	"github.com/dmitrymomot/jwtkit/pkg/signer"
	"github.com/dmitrymomot/jwtkit/pkg/validator"
)

func (a *app) sign(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	claimsPath := fs.String("claims", "", `YAML or JSON claims file, "-" for stdin`)
	subject := fs.String("sub", "", "subject claim")
	ttl := fs.Duration("ttl", a.cfg.TTL, "token lifetime, 0 for no exp claim")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	sv, err := config.NewSignerVerifier(a.cfg)
	if err != nil {
		return err
	}

	g, err := jwt.NewGenerator(sv)
	if err != nil {
		return err
	}

	claims := jwt.NewClaims(a.now(), *ttl)
	if a.cfg.Issuer != "" {
		claims.Set(jwt.ClaimIssuer, a.cfg.Issuer)
	}

	if *claimsPath != "" {
		extra, err := a.readClaims(*claimsPath)
		if err != nil {
			return err
		}
		for k, v := range extra {
			claims.Set(k, v)
		}
	}

	if *subject != "" {
		claims.Set(jwt.ClaimSubject, *subject)
	}

	token, err := g.Generate(claims)
	if err != nil {
		return err
	}

	id, _ := claims.String(jwt.ClaimID)
	a.log.DebugContext(ctx, "token issued", logger.Algorithm(sv.Name()), logger.TokenID(id))

	_, err = fmt.Fprintln(a.stdout, token)
	return err
}

func (a *app) verify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	leeway := fs.Duration("leeway", a.cfg.Leeway, "allowed clock skew for exp, nbf and iat")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	token, err := a.readToken(fs.Args())
	if err != nil {
		return err
	}

	v, err := config.NewVerifier(a.cfg)
	if err != nil {
		return err
	}

	opts := []jwt.Option{
		jwt.WithTimeValidation(*leeway),
		jwt.WithClock(a.now),
		jwt.WithLogger(a.log),
	}
	if a.cfg.Issuer != "" {
		opts = append(opts, jwt.WithValidator(validator.New(
			validator.Required(jwt.ClaimIssuer, validator.EqualsTo(a.cfg.Issuer)),
		)))
	}

	p, err := jwt.NewParser(v, opts...)
	if err != nil {
		return err
	}

	claims, err := p.Parse(token)
	if err != nil {
		return err
	}

	sub, _ := claims.String(jwt.ClaimSubject)
	a.log.DebugContext(ctx, "token verified", logger.Algorithm(v.Name()), logger.Subject(sub))

	out, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.stdout, string(out))
	return err
}

func (a *app) keygen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	length := fs.Int("length", signer.MinKeyLength, "key length in bytes before hex encoding")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	key, err := signer.GenerateKey(*length)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.stdout, hex.EncodeToString(key))
	return err
}

// readClaims accepts YAML, which also covers JSON documents.
func (a *app) readClaims(path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read claims: %w", err)
	}

	claims := map[string]any{}
	if err := yaml.Unmarshal(data, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	return claims, nil
}

func (a *app) readToken(args []string) (string, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return string(bytes.TrimSpace(data)), nil
	case 1:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", fmt.Errorf("%w: verify takes a single token", errUsage)
	}
}
