package main

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/config"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
	"github.com/dmitrymomot/jwtkit/pkg/validator"
)

var fixedNow = time.Unix(1_700_000_000, 0)

func newTestApp(cfg config.Signing, stdin string) (*app, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &app{
		cfg:    cfg,
		log:    slog.New(slog.DiscardHandler),
		stdin:  strings.NewReader(stdin),
		stdout: out,
		now:    func() time.Time { return fixedNow },
	}, out
}

func testConfig() config.Signing {
	return config.Signing{
		Algorithm: "HS256",
		Secret:    "0123456789abcdef0123456789abcdef",
		Issuer:    "jwtkit-cli",
		TTL:       time.Hour,
	}
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	claimsFile := filepath.Join(t.TempDir(), "claims.yaml")
	require.NoError(t, os.WriteFile(claimsFile, []byte("name: John Doe\nroles:\n  - admin\n  - user\nprofile:\n  age: 42\n"), 0o600))

	signApp, out := newTestApp(testConfig(), "")
	require.NoError(t, signApp.run(context.Background(), []string{"sign", "-claims", claimsFile, "-sub", "user-1"}))

	token := strings.TrimSpace(out.String())
	assert.Len(t, strings.Split(token, "."), 3)

	verifyApp, out := newTestApp(testConfig(), token+"\n")
	require.NoError(t, verifyApp.run(context.Background(), []string{"verify"}))

	var claims map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &claims))

	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "jwtkit-cli", claims["iss"])
	assert.Equal(t, "John Doe", claims["name"])
	assert.Equal(t, []any{"admin", "user"}, claims["roles"])
	assert.Equal(t, map[string]any{"age": float64(42)}, claims["profile"])
	assert.Equal(t, float64(fixedNow.Add(time.Hour).Unix()), claims["exp"])
}

func TestSign_JSONClaimsFromStdin(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(testConfig(), `{"scope": "read", "iss": "override"}`)
	require.NoError(t, a.run(context.Background(), []string{"sign", "-claims", "-", "-ttl", "0"}))

	svc, err := jwt.NewFromString(testConfig().Secret)
	require.NoError(t, err)

	claims, err := svc.Parse(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "read", claims["scope"])
	assert.Equal(t, "override", claims["iss"])
	assert.NotContains(t, claims, "exp")
}

func TestVerify_Rejections(t *testing.T) {
	t.Parallel()

	sign := func(t *testing.T, cfg config.Signing, args ...string) string {
		t.Helper()
		a, out := newTestApp(cfg, "")
		require.NoError(t, a.run(context.Background(), append([]string{"sign"}, args...)))
		return strings.TrimSpace(out.String())
	}

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		token := sign(t, testConfig(), "-ttl", "1m")

		a, _ := newTestApp(testConfig(), "")
		a.now = func() time.Time { return fixedNow.Add(time.Hour) }
		err := a.run(context.Background(), []string{"verify", token})
		assert.ErrorIs(t, err, validator.ErrValidation)

		a.now = func() time.Time { return fixedNow.Add(90 * time.Second) }
		assert.NoError(t, a.run(context.Background(), []string{"verify", "-leeway", "1m", token}))
	})

	t.Run("wrong issuer", func(t *testing.T) {
		t.Parallel()
		other := testConfig()
		other.Issuer = "someone-else"
		token := sign(t, other)

		a, _ := newTestApp(testConfig(), "")
		err := a.run(context.Background(), []string{"verify", token})
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other := testConfig()
		other.Secret = strings.Repeat("x", 32)
		token := sign(t, other)

		a, _ := newTestApp(testConfig(), "")
		err := a.run(context.Background(), []string{"verify", token})
		assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()
		a, _ := newTestApp(testConfig(), "")
		err := a.run(context.Background(), []string{"verify", "a", "b"})
		assert.ErrorIs(t, err, errUsage)
	})
}

func TestKeygen(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(testConfig(), "")
	require.NoError(t, a.run(context.Background(), []string{"keygen", "-length", "48"}))

	key, err := hex.DecodeString(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Len(t, key, 48)

	a, _ = newTestApp(testConfig(), "")
	assert.Error(t, a.run(context.Background(), []string{"keygen", "-length", "8"}))
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(testConfig(), "")
	assert.ErrorIs(t, a.run(context.Background(), nil), errUsage)
	assert.ErrorIs(t, a.run(context.Background(), []string{"encrypt"}), errUsage)
	assert.ErrorIs(t, a.run(context.Background(), []string{"sign", "-bogus"}), errUsage)
}

func TestVerify_PublicKeyOnly(t *testing.T) {
	t.Parallel()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	dir := t.TempDir()
	writeKey := func(name, blockType string, der []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), 0o600))
		return path
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)

	signCfg := config.Signing{Algorithm: "EdDSA", PrivateKeyFile: writeKey("priv.pem", "PRIVATE KEY", privDER), TTL: time.Hour}
	a, out := newTestApp(signCfg, "")
	require.NoError(t, a.run(context.Background(), []string{"sign", "-sub", "edge"}))
	token := strings.TrimSpace(out.String())

	verifyCfg := config.Signing{Algorithm: "EdDSA", PublicKeyFile: writeKey("pub.pem", "PUBLIC KEY", pubDER)}
	a, out = newTestApp(verifyCfg, "")
	require.NoError(t, a.run(context.Background(), []string{"verify", token}))
	assert.Contains(t, out.String(), `"sub": "edge"`)
}

func TestNewLogger_CommandAttribute(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Environment = "production"
	cfg.LogLevel = "debug"

	logs := &bytes.Buffer{}
	a, out := newTestApp(cfg, "")
	a.log = newLogger(cfg, logs)

	claimsFile := filepath.Join(t.TempDir(), "claims.yaml")
	require.NoError(t, os.WriteFile(claimsFile, []byte("name: John Doe\n"), 0o600))

	ctx := context.WithValue(context.Background(), commandKey{}, "sign")
	require.NoError(t, a.run(ctx, []string{"sign", "-claims", claimsFile}))
	assert.NotEmpty(t, out.String())

	assert.Contains(t, logs.String(), `"msg":"token issued"`)
	assert.Contains(t, logs.String(), `"command":"sign"`)
	assert.Contains(t, logs.String(), `"service":"jwtctl"`)
}
