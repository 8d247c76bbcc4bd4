package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/entities"
	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/repositories"
)

// LessonRepository handles lesson document persistence in Postgres
type LessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// Load retrieves the document for a room id
func (r *LessonRepository) Load(ctx context.Context, roomID string) (string, error) {
	var doc entities.LessonDocument
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repositories.ErrLessonNotFound
		}
		return "", err
	}
	return doc.Content, nil
}

// Save upserts the full document content for a room id
func (r *LessonRepository) Save(ctx context.Context, roomID string, content string) error {
	doc := entities.LessonDocument{
		RoomID:  roomID,
		Content: content,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(&doc).Error
}
