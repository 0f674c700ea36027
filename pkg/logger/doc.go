// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by a set of Option functions:
//
//   • Select an output format (text or json)
//   • Set the minimum log level, by value or by name
//   • Apply per-environment defaults with WithEnvironment
//   • Supply default slog.Attr values applied to every record
//   • Register ContextExtractor callbacks that inject attributes pulled from a
//     context value every time a record is handled.
//
// Helper constructors such as Error, Component, Algorithm and TokenID live in
// attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/jwtkit/pkg/logger"
//
//	log := logger.New(logger.WithEnvironment("production", "jwtctl"))
//	logger.SetAsDefault(log)
//
//	log.Info("token issued", logger.Algorithm("HS256"), logger.TokenID(jti))
package logger
