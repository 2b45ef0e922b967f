// Package service 实现业务逻辑层
package service

import (
	"context"
	"errors"

	"github.com/haierkeys/note-crud-service/internal/domain"
	"github.com/haierkeys/note-crud-service/internal/dto"
	"github.com/haierkeys/note-crud-service/pkg/convert"
	"github.com/haierkeys/note-crud-service/pkg/logger"

	"go.uber.org/zap"
)

// NoteService 定义笔记业务服务接口
// 每个方法只发起一次存储操作
type NoteService interface {
	// List 按等值条件获取笔记列表
	List(ctx context.Context, filter map[string]string) ([]*dto.NoteDTO, error)

	// Create 创建笔记
	Create(ctx context.Context, params *dto.NoteBody) error

	// Delete 删除笔记，返回是否删除
	Delete(ctx context.Context, params *dto.NoteIDRequest) (bool, error)

	// Update 合并字段到已有笔记
	Update(ctx context.Context, params *dto.NoteIDRequest, body *dto.NoteBody) error
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, lg *zap.Logger) NoteService {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &noteService{
		noteRepo: noteRepo,
		logger:   lg,
	}
}

// List 获取笔记列表
func (s *noteService) List(ctx context.Context, filter map[string]string) ([]*dto.NoteDTO, error) {
	notes, err := s.noteRepo.List(ctx, filter)
	if err != nil {
		s.logFailure(ctx, "NoteService.List", err, zap.Any(logger.FieldFilter, filter))
		return nil, err
	}

	result := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		d, err := s.domainToDTO(n)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

// Create 创建笔记
func (s *noteService) Create(ctx context.Context, params *dto.NoteBody) error {
	if err := s.noteRepo.Create(ctx, params.NoteFields); err != nil {
		s.logFailure(ctx, "NoteService.Create", err)
		return err
	}
	return nil
}

// Delete 删除笔记
func (s *noteService) Delete(ctx context.Context, params *dto.NoteIDRequest) (bool, error) {
	ok, err := s.noteRepo.Delete(ctx, params.ID)
	if err != nil {
		s.logFailure(ctx, "NoteService.Delete", err, zap.String(logger.FieldNoteID, params.ID))
		return false, err
	}
	return ok, nil
}

// Update 修改笔记
func (s *noteService) Update(ctx context.Context, params *dto.NoteIDRequest, body *dto.NoteBody) error {
	if err := s.noteRepo.Update(ctx, params.ID, body.NoteFields); err != nil {
		s.logFailure(ctx, "NoteService.Update", err, zap.String(logger.FieldNoteID, params.ID))
		return err
	}
	return nil
}

// domainToDTO 将领域模型转换为 DTO
func (s *noteService) domainToDTO(note *domain.Note) (*dto.NoteDTO, error) {
	d := &dto.NoteDTO{}
	if err := convert.StructAssign(note, d); err != nil {
		return nil, err
	}
	return d, nil
}

// logFailure 记录存储错误，客户端错误与未找到不记录为错误
func (s *noteService) logFailure(ctx context.Context, method string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String(logger.FieldMethod, method),
		zap.String(logger.FieldTraceID, logger.TraceIDFromContext(ctx)),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrNotFound):
		s.logger.Debug("note request rejected", fields...)
	case errors.Is(err, domain.ErrUnavailable):
		s.logger.Warn("note store unavailable", fields...)
	default:
		s.logger.Error("note store operation failed", fields...)
	}
}
