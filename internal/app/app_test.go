package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/haierkeys/note-crud-service/internal/dto"
	"github.com/haierkeys/note-crud-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sqliteConfig(t *testing.T) *AppConfig {
	t.Helper()
	cfg, _, err := LoadConfig(writeConfig(t, "store:\n  driver: sqlite\n  path: "+filepath.Join(t.TempDir(), "notes.sqlite3")+"\n"))
	require.NoError(t, err)
	return cfg
}

func TestAppOpenStoreAndShutdown(t *testing.T) {
	a, err := NewApp(sqliteConfig(t), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, store.StateConnecting, a.Store.State())

	// 连接建立前请求直接失败
	_, err = a.NoteService.List(context.Background(), nil)
	assert.ErrorIs(t, err, store.ErrUnavailable)

	a.OpenStore()
	require.Eventually(t, func() bool {
		return a.Store.State() == store.StateConnected
	}, 5*time.Second, 10*time.Millisecond)

	title := "A"
	body := &dto.NoteBody{}
	body.Title = &title
	require.NoError(t, a.NoteService.Create(context.Background(), body))

	notes, err := a.NoteService.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	require.NoError(t, a.Shutdown(context.Background()))
	assert.True(t, a.IsShuttingDown())
	assert.Equal(t, store.StateClosed, a.Store.State())
	// second shutdown is a no-op
	assert.NoError(t, a.Shutdown(context.Background()))
}

func TestNewAppRequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, zap.NewNop())
	assert.Error(t, err)
	_, err = NewApp(sqliteConfig(t), nil)
	assert.Error(t, err)
}
