package repository

import (
	"WanderLuxe/internal/model"
	"WanderLuxe/internal/pkg/consts"
	"context"

	"gorm.io/gorm"
)

// PostRepo 帖子只读查询，引擎的语料来源。不提供任何写入能力
type PostRepo interface {
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPublishedPage(ctx context.Context, page, pageSize int) ([]*model.Post, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) GetPublishedPage(ctx context.Context, page, pageSize int) ([]*model.Post, error) {
	if page < 1 {
		page = 1
	}
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("status = ? AND is_deleted = ?", consts.PostStatusPublished, false).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
