// Package domain 定义领域模型和接口
package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound no note matches the identifier
	// ErrNotFound 没有匹配该标识的笔记
	ErrNotFound = errors.New("note not found")

	// ErrInvalidID the identifier cannot be parsed into the store's identifier type
	// ErrInvalidID 标识无法解析为存储的标识类型
	ErrInvalidID = errors.New("invalid note id")

	// ErrUnavailable the store handle is not connected
	// ErrUnavailable 存储连接不可用
	ErrUnavailable = errors.New("store unavailable")
)

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// List returns every note whose fields equal the filter values; an empty filter matches all
	// List 返回字段与过滤条件相等的全部笔记，空条件匹配全部
	List(ctx context.Context, filter map[string]string) ([]*Note, error)

	// Create inserts a new note, the store assigns its identifier
	// Create 插入新笔记，标识由存储分配
	Create(ctx context.Context, fields NoteFields) error

	// Delete removes at most one note and reports whether one was removed
	// Delete 最多删除一条笔记并返回是否删除
	Delete(ctx context.Context, id string) (bool, error)

	// Update merges fields into an existing note, ErrNotFound when id is unmatched
	// Update 合并字段到已有笔记，未匹配时返回 ErrNotFound
	Update(ctx context.Context, id string, fields NoteFields) error
}
