package entities

import (
	"time"
)

// LessonDocument is the stored lesson notes model. One row per room id,
// holding the full markdown document accumulated across summary rounds.
type LessonDocument struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	RoomID    string    `json:"room_id" gorm:"type:varchar(255);uniqueIndex;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (LessonDocument) TableName() string {
	return "lesson_documents"
}
