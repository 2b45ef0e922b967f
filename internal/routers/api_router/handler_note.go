package api_router

import (
	"github.com/haierkeys/note-crud-service/internal/app"
	"github.com/haierkeys/note-crud-service/internal/dto"
	pkgapp "github.com/haierkeys/note-crud-service/pkg/app"
	"github.com/haierkeys/note-crud-service/pkg/code"
	"github.com/haierkeys/note-crud-service/pkg/convert"
	apperrors "github.com/haierkeys/note-crud-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// List 获取笔记列表
// @Summary 获取笔记列表
// @Description Returns every note whose fields equal the query parameters. Without parameters all notes are returned; a repeated parameter uses its first value.
// @Tags notes
// @Produce json
// @Param title query string false "title equals"
// @Param content query string false "content equals"
// @Success 200 {array} dto.NoteDTO "notes, possibly empty"
// @Failure 500 {string} string "Error fetching notes."
// @Failure 503 {string} string "Service unavailable."
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	filter := convert.FirstValues(c.Request.URL.Query())

	notes, err := h.App.NoteService.List(c.Request.Context(), filter)
	if err != nil {
		apperrors.ErrorResponse(c, err, code.ErrorNoteListFailed)
		return
	}

	response.ToJSON(code.Success, notes)
}

// Create 创建笔记
// @Summary 创建笔记
// @Description Inserts the request body as a new note. The identifier is assigned by the store and not returned.
// @Tags notes
// @Accept json
// @Produce plain
// @Param params body dto.NoteDTO true "note fields, any extra field is stored as is"
// @Success 200 {string} string "Note added successfully."
// @Failure 400 {string} string "Invalid request body."
// @Failure 500 {string} string "Error adding note."
// @Failure 503 {string} string "Service unavailable."
// @Router /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteBody{}

	if valid, errs := bindNoteBody(c, params); !valid {
		h.logDebug(c.Request.Context(), "NoteHandler.Create.BindJSONAndValid", errs)
		response.ToText(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	if err := h.App.NoteService.Create(c.Request.Context(), params); err != nil {
		apperrors.ErrorResponse(c, err, code.ErrorNoteCreateFailed)
		return
	}

	response.ToText(code.NoteAdded)
}

// Delete 删除笔记
// @Summary 删除笔记
// @Description Deletes at most one note. ok is false when no note has the identifier.
// @Tags notes
// @Produce json
// @Param id path string true "note id, 24 hex characters"
// @Success 200 {object} dto.NoteDeleteResponse "ok reports whether a note was deleted"
// @Failure 400 {string} string "Invalid note id."
// @Failure 500 {string} string "Error deleting note."
// @Failure 503 {string} string "Service unavailable."
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	if valid, errs := pkgapp.BindUriAndValid(c, params); !valid {
		h.logDebug(c.Request.Context(), "NoteHandler.Delete.BindUriAndValid", errs)
		response.ToText(code.ErrorInvalidNoteID.WithDetails(errs.ErrorsToString()))
		return
	}

	ok, err := h.App.NoteService.Delete(c.Request.Context(), params)
	if err != nil {
		apperrors.ErrorResponse(c, err, code.ErrorNoteDeleteFailed)
		return
	}

	response.ToJSON(code.Success, dto.NoteDeleteResponse{Ok: ok})
}

// Update 修改笔记
// @Summary 修改笔记
// @Description Merges the request body into the note: named fields are overwritten, other fields are kept.
// @Tags notes
// @Accept json
// @Produce plain
// @Param id path string true "note id, 24 hex characters"
// @Param params body dto.NoteDTO true "fields to set"
// @Success 200 {string} string "Note updated successfully."
// @Failure 400 {string} string "Invalid note id."
// @Failure 404 {string} string "Note not found."
// @Failure 500 {string} string "Error updating note."
// @Failure 503 {string} string "Service unavailable."
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	if valid, errs := pkgapp.BindUriAndValid(c, params); !valid {
		h.logDebug(c.Request.Context(), "NoteHandler.Update.BindUriAndValid", errs)
		response.ToText(code.ErrorInvalidNoteID.WithDetails(errs.ErrorsToString()))
		return
	}

	body := &dto.NoteBody{}
	if valid, errs := bindNoteBody(c, body); !valid {
		h.logDebug(c.Request.Context(), "NoteHandler.Update.BindJSONAndValid", errs)
		response.ToText(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	if err := h.App.NoteService.Update(c.Request.Context(), params, body); err != nil {
		apperrors.ErrorResponse(c, err, code.ErrorNoteUpdateFailed)
		return
	}

	response.ToText(code.NoteUpdated)
}

// bindNoteBody 绑定请求体，空请求体视为空对象
func bindNoteBody(c *gin.Context, body *dto.NoteBody) (bool, pkgapp.ValidErrors) {
	return pkgapp.BindOptionalJSONAndValid(c, body)
}
