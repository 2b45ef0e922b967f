package code

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeMessages(t *testing.T) {
	assert.Equal(t, "Note not found.", ErrorNoteNotFound.MsgIn("en"))
	assert.Equal(t, "笔记不存在。", ErrorNoteNotFound.MsgIn("zh_cn"))
	// unknown languages fall back to English
	assert.Equal(t, "Note not found.", ErrorNoteNotFound.MsgIn("fr"))
	assert.Equal(t, ErrorNoteNotFound.Msg(), ErrorNoteNotFound.MsgIn(""))
}

func TestCodeStatus(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, ErrorStoreUnavailable.StatusCode())
	assert.Equal(t, http.StatusBadRequest, ErrorInvalidNoteID.StatusCode())
	assert.Equal(t, http.StatusOK, NoteAdded.StatusCode())
	assert.True(t, NoteAdded.Status())
	assert.False(t, ErrorNoteNotFound.Status())
}

func TestWithDetailsCopies(t *testing.T) {
	c := ErrorNoteListFailed.WithDetails("socket closed")
	assert.Equal(t, []string{"socket closed"}, c.Details())
	assert.False(t, ErrorNoteListFailed.HaveDetails())

	d := Success.WithData([]int{1})
	assert.True(t, d.HaveData())
	assert.False(t, Success.HaveData())
}

func TestSetGlobalDefaultLang(t *testing.T) {
	t.Cleanup(func() { _ = SetGlobalDefaultLang(FALLBACK_LNG) })

	assert.NoError(t, SetGlobalDefaultLang("zh-CN"))
	assert.Equal(t, "zh_cn", GetGlobalDefaultLang())
	assert.Equal(t, "笔记添加成功。", NoteAdded.Msg())

	assert.Error(t, SetGlobalDefaultLang("xx"))
	assert.Equal(t, FALLBACK_LNG, GetGlobalDefaultLang())
}

func TestDuplicateCodePanics(t *testing.T) {
	assert.Panics(t, func() { NewError(510, http.StatusInternalServerError, lang{en: "dup"}) })
}
