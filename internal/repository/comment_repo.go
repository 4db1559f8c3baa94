package repository

import (
	"context"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Text      string    `gorm:"column:text"`
	ItemID    int64     `gorm:"column:item_id;index"`
	AuthorID  int64     `gorm:"column:author_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (commentModel) TableName() string { return "comments" }

type commentRow struct {
	commentModel
	AuthorName string `gorm:"column:author_name"`
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := commentModel{
		Text:      c.Text,
		ItemID:    c.ItemID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}

// ListByItem returns comments newest first with the author name joined in.
func (r *CommentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	var rows []commentRow
	q := `
SELECT comments.*, users.name AS author_name
FROM comments
JOIN users ON users.id = comments.author_id
WHERE comments.item_id = ?
ORDER BY comments.created_at DESC
`
	if tx := r.db.WithContext(ctx).Raw(q, itemID).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Comment{
			ID:         row.ID,
			Text:       row.Text,
			ItemID:     row.ItemID,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}
