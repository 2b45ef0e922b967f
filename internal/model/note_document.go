package model

import "time"

const TableNameNoteDocument = "notes"

// NoteDocument one schema-less note stored as JSON text, the embedded counterpart of a mongodb document
type NoteDocument struct {
	ID        string    `gorm:"column:id;primaryKey;type:char(24)" json:"id" form:"id"`
	Document  string    `gorm:"column:document;type:text;not null" json:"document" form:"document"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt" form:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt" form:"updatedAt"`
}

// TableName NoteDocument's default table name, overridden by the configured collection
func (*NoteDocument) TableName() string {
	return TableNameNoteDocument
}
