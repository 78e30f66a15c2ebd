package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "authorized_keys")
	content := strings.Join([]string{
		"# team keys",
		"",
		"not a key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed))) + " alice@laptop",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
	assert.False(t, isKeyAuthorized(allowed, filepath.Join(dir, "missing")))
}

func TestGetKeyFingerprint(t *testing.T) {
	fp := getKeyFingerprint(newPublicKey(t))

	assert.True(t, strings.HasPrefix(fp, "MD5:"))
	assert.Len(t, strings.Split(strings.TrimPrefix(fp, "MD5:"), ":"), 16)
}
