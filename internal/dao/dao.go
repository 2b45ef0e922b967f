// Package dao 实现数据访问层
package dao

import (
	"sort"

	"github.com/haierkeys/note-crud-service/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseID parses a caller supplied identifier into the store identifier type
// ParseID 将调用方传入的标识解析为存储标识类型
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, domain.ErrInvalidID
	}
	return oid, nil
}

// sortedKeys keeps generated filters deterministic
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
