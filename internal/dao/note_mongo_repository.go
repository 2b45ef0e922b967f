// Package dao 实现数据访问层
package dao

import (
	"context"

	"github.com/haierkeys/note-crud-service/internal/domain"
	"github.com/haierkeys/note-crud-service/internal/store"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// mongoNoteRepository 实现 domain.NoteRepository 接口
type mongoNoteRepository struct {
	conn *store.Connector[mongo.Collection]
}

// NewMongoNoteRepository 创建基于 mongodb 集合的 NoteRepository
func NewMongoNoteRepository(conn *store.Connector[mongo.Collection]) domain.NoteRepository {
	return &mongoNoteRepository{conn: conn}
}

// List 按等值条件查询，全部结果一次性读入内存
func (r *mongoNoteRepository) List(ctx context.Context, filter map[string]string) ([]*domain.Note, error) {
	coll, err := r.conn.Handle()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, mongoFilter(filter))
	if err != nil {
		return nil, errors.Wrap(err, "find notes")
	}
	defer cursor.Close(ctx)

	notes := make([]*domain.Note, 0)
	for cursor.Next(ctx) {
		n, err := decodeMongoNote(cursor.Current)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate notes")
	}
	return notes, nil
}

// Create 插入笔记，_id 由驱动生成
func (r *mongoNoteRepository) Create(ctx context.Context, fields domain.NoteFields) error {
	coll, err := r.conn.Handle()
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, fields.Document()); err != nil {
		return errors.Wrap(err, "insert note")
	}
	return nil
}

// Delete 最多删除一条
func (r *mongoNoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := ParseID(id)
	if err != nil {
		return false, err
	}
	coll, err := r.conn.Handle()
	if err != nil {
		return false, err
	}

	res, err := coll.DeleteOne(ctx, bson.D{{Key: domain.FieldID, Value: oid}})
	if err != nil {
		return false, errors.Wrap(err, "delete note")
	}
	return res.DeletedCount == 1, nil
}

// Update $set 合并字段
func (r *mongoNoteRepository) Update(ctx context.Context, id string, fields domain.NoteFields) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll, err := r.conn.Handle()
	if err != nil {
		return err
	}

	byID := bson.D{{Key: domain.FieldID, Value: oid}}

	// an empty $set is rejected by the server, only check existence
	if fields.IsEmpty() {
		err := coll.FindOne(ctx, byID, options.FindOne().SetProjection(bson.D{{Key: domain.FieldID, Value: 1}})).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "find note")
		}
		return nil
	}

	res, err := coll.UpdateOne(ctx, byID, bson.D{{Key: "$set", Value: fields.Document()}})
	if err != nil {
		return errors.Wrap(err, "update note")
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mongoFilter builds an equality filter; an _id value is compared as an ObjectID when it parses
// mongoFilter 构建等值过滤条件，_id 可解析时按 ObjectID 比较
func mongoFilter(filter map[string]string) bson.D {
	d := bson.D{}
	for _, k := range sortedKeys(filter) {
		v := filter[k]
		if k == domain.FieldID {
			if oid, err := ParseID(v); err == nil {
				d = append(d, bson.E{Key: k, Value: oid})
				continue
			}
		}
		d = append(d, bson.E{Key: k, Value: v})
	}
	return d
}

// decodeMongoNote converts a raw document through relaxed extended JSON so nested
// documents come back as plain JSON objects
// decodeMongoNote 通过 relaxed extended JSON 转换原始文档，嵌套文档还原为普通 JSON 对象
func decodeMongoNote(raw bson.Raw) (*domain.Note, error) {
	var id string
	if v, err := raw.LookupErr(domain.FieldID); err == nil {
		if oid, ok := v.ObjectIDOK(); ok {
			id = oid.Hex()
		} else {
			id = v.String()
		}
	}

	ext, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, errors.Wrap(err, "encode note document")
	}

	var doc map[string]any
	if err := sonic.Unmarshal(ext, &doc); err != nil {
		return nil, errors.Wrap(err, "decode note document")
	}
	return domain.NoteFromDocument(id, doc), nil
}
