package model

import (
	"gorm.io/gorm"
)

// AutoMigrate creates the table backing key under the given table name
// AutoMigrate 以指定表名创建 key 对应的表
func AutoMigrate(db *gorm.DB, key string, table string) error {
	switch key {

	case "NoteDocument":
		return db.Table(table).AutoMigrate(&NoteDocument{})
	}
	return nil
}
