package code

import "net/http"

// Success codes
// 成功码
var (
	Success     = NewSuss(1, lang{en: "Success", zh_cn: "成功"})
	NoteAdded   = NewSuss(2, lang{en: "Note added successfully.", zh_cn: "笔记添加成功。"})
	NoteUpdated = NewSuss(3, lang{en: "Note updated successfully.", zh_cn: "笔记更新成功。"})
)

// Failure codes
// 失败码
var (
	ErrorServerInternal   = NewError(500, http.StatusInternalServerError, lang{en: "Internal server error.", zh_cn: "服务器内部错误。"})
	ErrorStoreUnavailable = NewError(503, http.StatusServiceUnavailable, lang{en: "Service unavailable.", zh_cn: "服务不可用。"})
	ErrorNotFoundAPI      = NewError(404, http.StatusNotFound, lang{en: "Not found.", zh_cn: "接口不存在。"})
	ErrorInvalidParams    = NewError(400, http.StatusBadRequest, lang{en: "Invalid request body.", zh_cn: "请求体无效。"})
	ErrorInvalidNoteID    = NewError(401, http.StatusBadRequest, lang{en: "Invalid note id.", zh_cn: "笔记 ID 无效。"})
	ErrorNoteNotFound     = NewError(405, http.StatusNotFound, lang{en: "Note not found.", zh_cn: "笔记不存在。"})
	ErrorNoteListFailed   = NewError(510, http.StatusInternalServerError, lang{en: "Error fetching notes.", zh_cn: "获取笔记失败。"})
	ErrorNoteCreateFailed = NewError(511, http.StatusInternalServerError, lang{en: "Error adding note.", zh_cn: "添加笔记失败。"})
	ErrorNoteUpdateFailed = NewError(512, http.StatusInternalServerError, lang{en: "Error updating note.", zh_cn: "更新笔记失败。"})
	ErrorNoteDeleteFailed = NewError(513, http.StatusInternalServerError, lang{en: "Error deleting note.", zh_cn: "删除笔记失败。"})
)
