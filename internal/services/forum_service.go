package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type ForumServiceInterface interface {
	CreatePost(ctx context.Context, userId string, request request_models.CreateForumPostRequest) (string, error)
	ListPosts(ctx context.Context, category string, page, pageSize int) ([]response_models.ForumPostResponse, error)
	GetPostDetails(ctx context.Context, postId string) (*response_models.ForumPostDetailResponse, error)
	CreateReply(ctx context.Context, userId, postId string, request request_models.CreateForumReplyRequest) error
	DeletePost(ctx context.Context, userId, postId string) error
}

type ForumService struct {
	forumRepo repositories.ForumRepository
}

func NewForumService(forumRepo repositories.ForumRepository) ForumServiceInterface {
	return &ForumService{forumRepo: forumRepo}
}

func (f *ForumService) CreatePost(ctx context.Context, userId string, request request_models.CreateForumPostRequest) (string, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	post := &db_models.ForumPost{
		UserID:   userUUID,
		Title:    request.Title,
		Body:     request.Body,
		Category: request.Category,
		Tags:     pq.StringArray(request.Tags),
	}
	if err := f.forumRepo.CreatePost(ctx, post); err != nil {
		log.Printf("Error creating forum post: %v", err)
		return "", utils.ErrDatabaseError
	}
	return post.ID.String(), nil
}

func (f *ForumService) ListPosts(ctx context.Context, category string, page, pageSize int) ([]response_models.ForumPostResponse, error) {
	posts, err := f.forumRepo.ListPosts(ctx, category, page, pageSize)
	if err != nil {
		log.Printf("Error listing forum posts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	counts, err := f.forumRepo.CountReplies(ctx, ids)
	if err != nil {
		log.Printf("Error counting replies: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ForumPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, response_models.ForumPostResponse{
			ID:         p.ID.String(),
			Title:      p.Title,
			Category:   p.Category,
			Tags:       []string(p.Tags),
			AuthorID:   p.UserID.String(),
			ReplyCount: counts[p.ID],
			CreatedAt:  p.CreatedAt,
		})
	}
	return out, nil
}

func (f *ForumService) GetPostDetails(ctx context.Context, postId string) (*response_models.ForumPostDetailResponse, error) {
	post, err := f.forumRepo.GetPostWithReplies(ctx, postId)
	if err != nil {
		log.Printf("Error fetching forum post %s: %v", postId, err)
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrForumPostNotFound
	}

	replies := make([]response_models.ForumReplyResponse, 0, len(post.Replies))
	for _, r := range post.Replies {
		replies = append(replies, response_models.ForumReplyResponse{
			ID:        r.ID.String(),
			AuthorID:  r.UserID.String(),
			Body:      r.Body,
			CreatedAt: r.CreatedAt,
		})
	}

	return &response_models.ForumPostDetailResponse{
		Post: response_models.ForumPostResponse{
			ID:         post.ID.String(),
			Title:      post.Title,
			Body:       post.Body,
			Category:   post.Category,
			Tags:       []string(post.Tags),
			AuthorID:   post.UserID.String(),
			ReplyCount: len(post.Replies),
			CreatedAt:  post.CreatedAt,
		},
		Replies: replies,
	}, nil
}

func (f *ForumService) CreateReply(ctx context.Context, userId, postId string, request request_models.CreateForumReplyRequest) error {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return utils.ErrInvalidInput
	}
	postUUID, err := uuid.Parse(postId)
	if err != nil {
		return utils.ErrInvalidInput
	}

	post, err := f.forumRepo.GetPostWithReplies(ctx, postId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrForumPostNotFound
	}

	reply := &db_models.ForumReply{
		PostID: postUUID,
		UserID: userUUID,
		Body:   request.Body,
	}
	if err := f.forumRepo.CreateReply(ctx, reply); err != nil {
		log.Printf("Error creating forum reply: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *ForumService) DeletePost(ctx context.Context, userId, postId string) error {
	post, err := f.forumRepo.GetPostWithReplies(ctx, postId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrForumPostNotFound
	}
	if post.UserID.String() != userId {
		return utils.ErrNotOwner
	}

	if err := f.forumRepo.DeletePost(ctx, post.ID); err != nil {
		log.Printf("Error deleting forum post %s: %v", postId, err)
		return utils.ErrDatabaseError
	}
	return nil
}
