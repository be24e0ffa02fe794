package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "yatra/internal/models/db_models"
)

type ForumRepository interface {
	CreatePost(ctx context.Context, post *dbm.ForumPost) error
	ListPosts(ctx context.Context, category string, page, pageSize int) ([]dbm.ForumPost, error)
	GetPostWithReplies(ctx context.Context, id string) (*dbm.ForumPost, error)
	CreateReply(ctx context.Context, reply *dbm.ForumReply) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	CountReplies(ctx context.Context, postIds []uuid.UUID) (map[uuid.UUID]int, error)
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) CreatePost(ctx context.Context, post *dbm.ForumPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *forumRepository) ListPosts(ctx context.Context, category string, page, pageSize int) ([]dbm.ForumPost, error) {
	var posts []dbm.ForumPost
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *forumRepository) GetPostWithReplies(ctx context.Context, id string) (*dbm.ForumPost, error) {
	var post dbm.ForumPost
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *forumRepository) CreateReply(ctx context.Context, reply *dbm.ForumReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *forumRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).
			Delete(&dbm.ForumReply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.ForumPost{}, "id = ?", id).Error
	})
}

func (r *forumRepository) CountReplies(ctx context.Context, postIds []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(postIds) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	type row struct {
		PostID uuid.UUID
		N      int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&dbm.ForumReply{}).
		Select("post_id, count(*) as n").
		Where("post_id IN ?", postIds).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.PostID] = r.N
	}
	return counts, nil
}
