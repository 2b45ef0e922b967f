// Package domain 定义领域模型和接口
package domain

import "fmt"

// Well-known document keys
// 文档中的固定字段名
const (
	FieldID      = "_id"
	FieldTitle   = "title"
	FieldContent = "content"
)

// NoteFields is the schema-less body of a note. title and content are typed and
// optional, every other key is kept verbatim in Extra.
// NoteFields 笔记的无模式字段：title 与 content 为可选的强类型字段，其余字段原样保存在 Extra 中
type NoteFields struct {
	Title   *string
	Content *string
	Extra   map[string]any
}

// Note 笔记领域模型
type Note struct {
	ID string
	NoteFields
}

// FieldTypeError a known field carries a value of the wrong type
type FieldTypeError struct {
	Field string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q must be a string, got %T", e.Field, e.Value)
}

// ParseNoteFields splits a client document into typed and extra fields.
// A non-string title or content is rejected; _id is dropped because identity is store assigned.
// ParseNoteFields 将客户端文档拆分为强类型字段与额外字段
// title/content 非字符串时报错；_id 由存储分配，直接丢弃
func ParseNoteFields(doc map[string]any) (NoteFields, error) {
	var f NoteFields
	for k, v := range doc {
		switch k {
		case FieldID:
			continue
		case FieldTitle, FieldContent:
			s, ok := v.(string)
			if !ok {
				return NoteFields{}, &FieldTypeError{Field: k, Value: v}
			}
			f.set(k, s)
		default:
			if f.Extra == nil {
				f.Extra = make(map[string]any)
			}
			f.Extra[k] = v
		}
	}
	return f, nil
}

// NoteFromDocument builds a Note from a stored document. Stored values that do not
// fit the typed fields stay in Extra so they are returned unchanged.
// NoteFromDocument 从存储文档构建笔记，不符合强类型的值保留在 Extra 中
func NoteFromDocument(id string, doc map[string]any) *Note {
	n := &Note{ID: id}
	for k, v := range doc {
		if k == FieldID {
			continue
		}
		if k == FieldTitle || k == FieldContent {
			if s, ok := v.(string); ok {
				n.set(k, s)
				continue
			}
		}
		if n.Extra == nil {
			n.Extra = make(map[string]any)
		}
		n.Extra[k] = v
	}
	return n
}

func (f *NoteFields) set(key, value string) {
	v := value
	if key == FieldTitle {
		f.Title = &v
	} else {
		f.Content = &v
	}
}

// Document flattens the fields into the stored representation, without _id
// Document 将字段展开为存储文档（不含 _id）
func (f NoteFields) Document() map[string]any {
	doc := make(map[string]any, len(f.Extra)+2)
	for k, v := range f.Extra {
		if k == FieldID {
			continue
		}
		doc[k] = v
	}
	if f.Title != nil {
		doc[FieldTitle] = *f.Title
	}
	if f.Content != nil {
		doc[FieldContent] = *f.Content
	}
	return doc
}

// IsEmpty reports whether no field is set
func (f NoteFields) IsEmpty() bool {
	return f.Title == nil && f.Content == nil && len(f.Extra) == 0
}

// Merge applies partial over f: named fields overwrite, nothing is removed
// Merge 将 partial 合并到 f：同名字段覆盖，不删除任何字段
func (f NoteFields) Merge(partial NoteFields) NoteFields {
	merged := f.Document()
	for k, v := range partial.Document() {
		merged[k] = v
	}
	return NoteFromDocument("", merged).NoteFields
}
