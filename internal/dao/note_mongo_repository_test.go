package dao

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/note-crud-service/internal/domain"
	"github.com/haierkeys/note-crud-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMongoFilter(t *testing.T) {
	oid := bson.NewObjectID()

	f := mongoFilter(map[string]string{"title": "A", "_id": oid.Hex()})
	require.Len(t, f, 2)
	assert.Equal(t, bson.E{Key: "_id", Value: oid}, f[0])
	assert.Equal(t, bson.E{Key: "title", Value: "A"}, f[1])

	f = mongoFilter(map[string]string{"_id": "nope"})
	assert.Equal(t, bson.D{{Key: "_id", Value: "nope"}}, f)

	assert.Empty(t, mongoFilter(nil))
}

func TestDecodeMongoNote(t *testing.T) {
	oid := bson.NewObjectID()
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: oid},
		{Key: "title", Value: "A"},
		{Key: "content", Value: 42},
		{Key: "meta", Value: bson.D{{Key: "pinned", Value: true}}},
	})
	require.NoError(t, err)

	n, err := decodeMongoNote(bson.Raw(raw))
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), n.ID)
	assert.Equal(t, "A", *n.Title)
	// a stored non-string content is kept as is
	assert.Nil(t, n.Content)
	assert.EqualValues(t, 42, n.Extra["content"])
	assert.Equal(t, map[string]any{"pinned": true}, n.Extra["meta"])
	assert.NotContains(t, n.Extra, "_id")
}

func TestParseID(t *testing.T) {
	_, err := ParseID("64b000000000000000000000")
	assert.NoError(t, err)
	_, err = ParseID("64b0")
	assert.Error(t, err)
}

func assertMongoUnavailable(t *testing.T, repo domain.NoteRepository) {
	t.Helper()
	ctx := context.Background()
	id := bson.NewObjectID().Hex()
	title := "A"

	_, err := repo.List(ctx, map[string]string{"title": "A"})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.ErrorIs(t, repo.Create(ctx, domain.NoteFields{Title: &title}), domain.ErrUnavailable)
	ok, err := repo.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.False(t, ok)
	assert.ErrorIs(t, repo.Update(ctx, id, domain.NoteFields{Title: &title}), domain.ErrUnavailable)
	assert.ErrorIs(t, repo.Update(ctx, id, domain.NoteFields{}), domain.ErrUnavailable)

	// 标识在取句柄之前校验
	_, err = repo.Delete(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	assert.ErrorIs(t, repo.Update(ctx, "abc", domain.NoteFields{}), domain.ErrInvalidID)
}

func TestMongoRepositoryNotOpened(t *testing.T) {
	conn := store.NewMongo(store.Config{
		Driver:     store.DriverMongo,
		URI:        "mongodb://127.0.0.1:27017",
		Database:   "tutor",
		Collection: "notes",
	}, nil)

	assertMongoUnavailable(t, NewMongoNoteRepository(conn))
}

func TestMongoRepositoryConnectFailed(t *testing.T) {
	conn := store.NewMongo(store.Config{
		Driver:         store.DriverMongo,
		URI:            "mongodb://127.0.0.1:1",
		Database:       "tutor",
		Collection:     "notes",
		ConnectTimeout: 200 * time.Millisecond,
	}, nil)

	require.Error(t, conn.Open(context.Background()))
	assert.Equal(t, store.StateUnavailable, conn.State())

	assertMongoUnavailable(t, NewMongoNoteRepository(conn))
}
