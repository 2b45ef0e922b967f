// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/haierkeys/note-crud-service/internal/domain"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// ErrBodyNotObject the request body is valid JSON but not an object
var ErrBodyNotObject = errors.New("request body must be a JSON object")

// NoteIDRequest path parameter of DELETE/PUT /notes/:id
// NoteIDRequest 笔记路径参数
type NoteIDRequest struct {
	ID string `uri:"id" binding:"required,objectid" example:"64b7f0c2e13f2a0a4c8b4567"`
}

// NoteBody request body for creating or updating a note
// NoteBody 创建或修改笔记的请求体，title 与 content 可选，其余字段原样保存
type NoteBody struct {
	domain.NoteFields
}

// UnmarshalJSON accepts any JSON object; a non-string title or content is rejected
func (b *NoteBody) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(ErrBodyNotObject, err.Error())
	}
	// JSON null decodes into a nil map
	if doc == nil {
		return ErrBodyNotObject
	}

	fields, err := domain.ParseNoteFields(doc)
	if err != nil {
		return err
	}
	b.NoteFields = fields
	return nil
}

// NoteDTO Note data transfer object, serialized as the flat stored document plus _id
// NoteDTO 笔记数据传输对象，序列化为扁平文档并附带 _id
type NoteDTO struct {
	ID      string         `json:"_id" example:"64b7f0c2e13f2a0a4c8b4567"`
	Title   *string        `json:"title,omitempty" example:"Groceries"`
	Content *string        `json:"content,omitempty" example:"milk, eggs"`
	Extra   map[string]any `json:"-" swaggerignore:"true"`
}

// MarshalJSON flattens Extra next to the typed fields
func (n NoteDTO) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(n.Extra)+3)
	for k, v := range n.Extra {
		doc[k] = v
	}
	if n.Title != nil {
		doc[domain.FieldTitle] = *n.Title
	}
	if n.Content != nil {
		doc[domain.FieldContent] = *n.Content
	}
	doc[domain.FieldID] = n.ID
	return sonic.ConfigStd.Marshal(doc)
}

// NoteDeleteResponse body of DELETE /notes/:id
type NoteDeleteResponse struct {
	Ok bool `json:"ok"`
}
