package auth

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

func TestCredentialWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.db")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0o600))

	var fired atomic.Int32
	w := NewCredentialWatcher(path, func() {
		fired.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("rewritten"), 0o600))

	assert.Eventually(t, func() bool {
		return fired.Load() > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCredentialWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.db")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0o600))

	var fired atomic.Int32
	w := NewCredentialWatcher(path, func() {
		fired.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.db"), []byte("x"), 0o600))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestCredentialWatcher_Close(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.db")

	w := NewCredentialWatcher(path, func() {})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, w.Close())
}

func TestNullProvider(t *testing.T) {
	p := NewNullProvider()

	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, p.IsAuthenticated())
	assert.Empty(t, p.UserID())

	called := false
	unsubscribe := p.Subscribe(func(domain.Session) { called = true })
	unsubscribe()
	assert.False(t, called)
}
