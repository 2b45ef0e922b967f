package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/haierkeys/note-crud-service/internal/domain"
	"github.com/haierkeys/note-crud-service/internal/store"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) domain.NoteRepository {
	t.Helper()
	conn := store.NewSQLite(store.Config{
		Driver:     store.DriverSQLite,
		Path:       filepath.Join(t.TempDir(), "notes.sqlite3"),
		Collection: "notes",
	}, nil)
	require.NoError(t, conn.Open(context.Background()))
	t.Cleanup(func() { _ = conn.Close(context.Background()) })
	return NewSQLiteNoteRepository(conn, "notes")
}

func strPtr(s string) *string { return &s }

func TestSQLiteCreateThenList(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NoteFields{
		Title:   strPtr("A"),
		Content: strPtr("B"),
		Extra:   map[string]any{"tags": []any{"x", "y"}, "meta": map[string]any{"pinned": true}},
	}))
	require.NoError(t, repo.Create(ctx, domain.NoteFields{Title: strPtr("Other")}))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	first := all[0]
	assert.Len(t, first.ID, 24)
	assert.Equal(t, "A", *first.Title)
	assert.Equal(t, "B", *first.Content)
	assert.Equal(t, []any{"x", "y"}, first.Extra["tags"])
	assert.Equal(t, map[string]any{"pinned": true}, first.Extra["meta"])

	byTitle, err := repo.List(ctx, map[string]string{"title": "A"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, first.ID, byTitle[0].ID)

	none, err := repo.List(ctx, map[string]string{"title": "missing"})
	require.NoError(t, err)
	assert.Empty(t, none)

	unknown, err := repo.List(ctx, map[string]string{"color": "red"})
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestSQLiteListByID(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NoteFields{Title: strPtr("A")}))
	require.NoError(t, repo.Create(ctx, domain.NoteFields{Title: strPtr("B")}))
	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	got, err := repo.List(ctx, map[string]string{"_id": all[1].ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", *got[0].Title)

	got, err = repo.List(ctx, map[string]string{"_id": "not-an-id"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteDelete(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NoteFields{Title: strPtr("A")}))
	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	id := all[0].ID

	ok, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Delete(ctx, "xyz")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestSQLiteUpdate(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NoteFields{
		Title:   strPtr("Old"),
		Content: strPtr("keep"),
		Extra:   map[string]any{"tags": []any{"a"}},
	}))
	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	id := all[0].ID

	require.NoError(t, repo.Update(ctx, id, domain.NoteFields{Title: strPtr("New")}))

	got, err := repo.List(ctx, map[string]string{"_id": id})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", *got[0].Title)
	assert.Equal(t, "keep", *got[0].Content)
	assert.Equal(t, []any{"a"}, got[0].Extra["tags"])

	// empty update is a no-op on an existing note
	assert.NoError(t, repo.Update(ctx, id, domain.NoteFields{}))

	missing := "64b000000000000000000000"
	assert.ErrorIs(t, repo.Update(ctx, missing, domain.NoteFields{Title: strPtr("x")}), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, missing, domain.NoteFields{}), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, "xyz", domain.NoteFields{}), domain.ErrInvalidID)
}

func TestSQLiteUnavailable(t *testing.T) {
	conn := store.NewSQLite(store.Config{
		Driver:     store.DriverSQLite,
		Path:       filepath.Join(t.TempDir(), "notes.sqlite3"),
		Collection: "notes",
	}, nil)
	repo := NewSQLiteNoteRepository(conn, "notes")
	ctx := context.Background()

	_, err := repo.List(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.ErrorIs(t, repo.Create(ctx, domain.NoteFields{}), domain.ErrUnavailable)
	_, err = repo.Delete(ctx, "64b000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.ErrorIs(t, repo.Update(ctx, "64b000000000000000000000", domain.NoteFields{}), domain.ErrUnavailable)
}

func TestJSONPath(t *testing.T) {
	assert.Equal(t, `$."title"`, jsonPath("title"))
	assert.Equal(t, `$."a.b"`, jsonPath("a.b"))
	assert.Equal(t, `$."say\"hi"`, jsonPath(`say"hi`))
}

// 创建后按 title 过滤必能查到
func TestSQLiteCreatedNoteIsFilterable(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25

	properties := gopter.NewProperties(parameters)

	properties.Property("created note is returned by a title filter", prop.ForAll(
		func(title, content string) bool {
			if err := repo.Create(ctx, domain.NoteFields{Title: &title, Content: &content}); err != nil {
				t.Logf("create: %v", err)
				return false
			}
			notes, err := repo.List(ctx, map[string]string{"title": title})
			if err != nil || len(notes) == 0 {
				return false
			}
			for _, n := range notes {
				if n.Title == nil || *n.Title != title {
					return false
				}
			}
			return notes[len(notes)-1].Content != nil && *notes[len(notes)-1].Content == content
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
