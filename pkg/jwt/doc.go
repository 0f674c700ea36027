// Package jwt issues and verifies compact signed tokens (RFC 7519 JWS
// compact serialization) and runs claim rules on verified tokens.
//
// A Generator binds a signer.Signer and turns Claims into
//
//	base64url(header) "." base64url(claims) "." base64url(signature)
//
// The header is built from the signer's algorithm identifier and is never
// taken from the claims. A Parser binds a signer.Verifier and reverses the
// process. It only accepts tokens whose header names the verifier's own
// algorithm, and returns claims only after the signature has been checked.
//
// # Architecture
//
//   • Generator / Parser – token assembly and verification.
//   • Service – a Generator and a Parser sharing one algorithm instance.
//   • claims.go – Claims type, registered claim names, typed getters.
//   • context.go – helper functions for working with context.
//   • middleware.go – net/http middleware that extracts a token (from header,
//     cookie, query, or custom header) and injects verified claims into the
//     request context.
//   • errors.go – sentinel error values returned by the package.
//
// JSON and Base64URL handling is delegated to pkg/codec and can be replaced
// with WithJSON and WithBase64. The defaults are codec.StrictJSON and
// codec.SafeBase64.
//
// # Usage
//
//	import "github.com/dmitrymomot/jwtkit/pkg/jwt"
//
//	hs, err := signer.NewHS256(key)
//	if err != nil {
//	    // key shorter than 32 bytes
//	}
//
//	svc, err := jwt.New(hs,
//	    jwt.WithTimeValidation(30*time.Second),
//	    jwt.WithValidator(validator.New(
//	        validator.Required("sub", validator.NotEmpty()),
//	    )),
//	)
//
//	token, err := svc.Generate(jwt.NewClaims(time.Now(), time.Hour).Set("sub", "42"))
//
//	claims, err := svc.Parse(token)
//
//	// Use middleware in an http.Handler chain.
//	http.Handle("/api", jwt.Middleware(svc)(yourHandler))
//
// # Error Handling
//
// Parse fails with ErrMalformedToken (segment count or base64), ErrParse
// (JSON or header), ErrInvalidSignature (including algorithm mismatch, which
// also matches ErrUnexpectedAlgorithm) or a *validator.ValidationError
// matching ErrValidation. Structural checks always run before the signature
// check, and the signature check always runs before claim rules.
package jwt
