// Command jwtctl issues and inspects signed tokens from the command line.
//
// Signing settings come from the environment (see package config):
//
//	JWT_SECRET=... jwtctl sign -claims claims.yaml
//	jwtctl verify eyJhbGciOi...
//	jwtctl keygen -length 48
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/dmitrymomot/jwtkit/pkg/config"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

const usage = `usage: jwtctl [-env-file path] <command> [flags]

commands:
  sign     issue a token for the claims in a YAML or JSON file
  verify   verify a token and print its claims
  keygen   print a random HMAC secret
`

var errUsage = errors.New("invalid usage")

// commandKey carries the subcommand name so every log record names it.
type commandKey struct{}

func newLogger(cfg config.Signing, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Environment, "jwtctl"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithContextValue("command", commandKey{}),
	)
}

type app struct {
	cfg    config.Signing
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	now    func() time.Time
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := realMain(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func realMain(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jwtctl", flag.ContinueOnError)
	envFile := fs.String("env-file", "", "load variables from this .env file first")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
	}

	var cfg config.Signing
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	log := newLogger(cfg, os.Stderr)

	a := &app{
		cfg:    cfg,
		log:    log,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		now:    time.Now,
	}

	if fs.NArg() > 0 {
		ctx = context.WithValue(ctx, commandKey{}, fs.Arg(0))
	}
	if err := a.run(ctx, fs.Args()); err != nil {
		if !errors.Is(err, errUsage) {
			log.ErrorContext(ctx, "command failed", logger.Error(err))
		}
		return err
	}
	return nil
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "sign":
		return a.sign(ctx, args[1:])
	case "verify":
		return a.verify(ctx, args[1:])
	case "keygen":
		return a.keygen(args[1:])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}
