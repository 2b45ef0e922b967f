package dao

import (
	"context"
	"strings"

	"github.com/haierkeys/note-crud-service/internal/domain"
	"github.com/haierkeys/note-crud-service/internal/model"
	"github.com/haierkeys/note-crud-service/internal/store"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/gorm"
)

// sqliteNoteRepository 实现 domain.NoteRepository 接口，文档以 JSON 文本存放
type sqliteNoteRepository struct {
	conn  *store.Connector[gorm.DB]
	table string
}

// NewSQLiteNoteRepository 创建基于 sqlite 表的 NoteRepository
func NewSQLiteNoteRepository(conn *store.Connector[gorm.DB], table string) domain.NoteRepository {
	return &sqliteNoteRepository{conn: conn, table: table}
}

// tx 获取绑定到集合表的查询
func (r *sqliteNoteRepository) tx(ctx context.Context) (*gorm.DB, error) {
	db, err := r.conn.Handle()
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx).Table(r.table), nil
}

// List 按等值条件查询，按插入顺序返回
func (r *sqliteNoteRepository) List(ctx context.Context, filter map[string]string) ([]*domain.Note, error) {
	q, err := r.tx(ctx)
	if err != nil {
		return nil, err
	}

	for _, k := range sortedKeys(filter) {
		v := filter[k]
		if k == domain.FieldID {
			if oid, err := ParseID(v); err == nil {
				v = oid.Hex()
			}
			q = q.Where("id = ?", v)
			continue
		}
		q = q.Where("json_extract(document, ?) = ?", jsonPath(k), v)
	}

	var rows []*model.NoteDocument
	if err := q.Order("rowid").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "find notes")
	}

	notes := make([]*domain.Note, 0, len(rows))
	for _, row := range rows {
		n, err := decodeSQLiteNote(row)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Create 插入笔记，标识与 mongodb 一致使用 ObjectID
func (r *sqliteNoteRepository) Create(ctx context.Context, fields domain.NoteFields) error {
	q, err := r.tx(ctx)
	if err != nil {
		return err
	}

	doc, err := sonic.MarshalString(fields.Document())
	if err != nil {
		return errors.Wrap(err, "encode note document")
	}

	row := &model.NoteDocument{
		ID:       bson.NewObjectID().Hex(),
		Document: doc,
	}
	if err := q.Create(row).Error; err != nil {
		return errors.Wrap(err, "insert note")
	}
	return nil
}

func (r *sqliteNoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := ParseID(id)
	if err != nil {
		return false, err
	}
	q, err := r.tx(ctx)
	if err != nil {
		return false, err
	}

	res := q.Where("id = ?", oid.Hex()).Delete(&model.NoteDocument{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete note")
	}
	return res.RowsAffected == 1, nil
}

// Update 在事务中读取、合并并写回文档
func (r *sqliteNoteRepository) Update(ctx context.Context, id string, fields domain.NoteFields) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	q, err := r.tx(ctx)
	if err != nil {
		return err
	}

	return q.Transaction(func(tx *gorm.DB) error {
		var row model.NoteDocument
		err := tx.Table(r.table).Where("id = ?", oid.Hex()).Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "find note")
		}
		if fields.IsEmpty() {
			return nil
		}

		current, err := decodeSQLiteNote(&row)
		if err != nil {
			return err
		}
		doc, err := sonic.MarshalString(current.Merge(fields).Document())
		if err != nil {
			return errors.Wrap(err, "encode note document")
		}

		err = tx.Table(r.table).Where("id = ?", row.ID).Update("document", doc).Error
		return errors.Wrap(err, "update note")
	})
}

// jsonPath quotes key as a single JSON path member so dots and brackets are not interpreted
// jsonPath 将 key 作为单个 JSON path 成员引用，避免 . 与 [ 被解析
func jsonPath(key string) string {
	return `$."` + strings.ReplaceAll(key, `"`, `\"`) + `"`
}

func decodeSQLiteNote(row *model.NoteDocument) (*domain.Note, error) {
	var doc map[string]any
	if err := sonic.UnmarshalString(row.Document, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode note document %s", row.ID)
	}
	return domain.NoteFromDocument(row.ID, doc), nil
}
