package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/pkg/utils"
)

type mockForumRepo struct {
	mock.Mock
}

func (m *mockForumRepo) CreatePost(ctx context.Context, post *db_models.ForumPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockForumRepo) ListPosts(ctx context.Context, category string, page, pageSize int) ([]db_models.ForumPost, error) {
	args := m.Called(ctx, category, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.ForumPost), args.Error(1)
}

func (m *mockForumRepo) GetPostWithReplies(ctx context.Context, id string) (*db_models.ForumPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.ForumPost), args.Error(1)
}

func (m *mockForumRepo) CreateReply(ctx context.Context, reply *db_models.ForumReply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *mockForumRepo) DeletePost(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockForumRepo) CountReplies(ctx context.Context, postIds []uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, postIds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

func TestCreatePostRejectsBadUserId(t *testing.T) {
	svc := NewForumService(&mockForumRepo{})

	_, err := svc.CreatePost(context.Background(), "not-a-uuid", request_models.CreateForumPostRequest{
		Title:    "Best vada pav in Vashi?",
		Body:     "Looking for recommendations.",
		Category: "Food",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreatePostReturnsNewId(t *testing.T) {
	repo := &mockForumRepo{}
	svc := NewForumService(repo)

	repo.On("CreatePost", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		post := args.Get(1).(*db_models.ForumPost)
		post.ID = uuid.New()
	}).Return(nil)

	id, err := svc.CreatePost(context.Background(), uuid.New().String(), request_models.CreateForumPostRequest{
		Title:    "Monsoon trek to Kharghar Hills",
		Body:     "Anyone joining this weekend?",
		Category: "Meetups",
		Tags:     []string{"trekking", "monsoon"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestListPostsIncludesReplyCounts(t *testing.T) {
	repo := &mockForumRepo{}
	svc := NewForumService(repo)

	postId := uuid.New()
	post := db_models.ForumPost{UserID: uuid.New(), Title: "Hidden gems in Belapur", Category: "General"}
	post.ID = postId

	repo.On("ListPosts", mock.Anything, "General", 1, 20).Return([]db_models.ForumPost{post}, nil)
	repo.On("CountReplies", mock.Anything, []uuid.UUID{postId}).Return(map[uuid.UUID]int{postId: 3}, nil)

	posts, err := svc.ListPosts(context.Background(), "General", 1, 20)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 3, posts[0].ReplyCount)
	assert.Equal(t, "Hidden gems in Belapur", posts[0].Title)
}

func TestGetPostDetailsNotFound(t *testing.T) {
	repo := &mockForumRepo{}
	svc := NewForumService(repo)

	repo.On("GetPostWithReplies", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.GetPostDetails(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrForumPostNotFound)
}

func TestDeletePostRejectsNonAuthor(t *testing.T) {
	repo := &mockForumRepo{}
	svc := NewForumService(repo)

	post := &db_models.ForumPost{UserID: uuid.New()}
	post.ID = uuid.New()
	repo.On("GetPostWithReplies", mock.Anything, post.ID.String()).Return(post, nil)

	err := svc.DeletePost(context.Background(), uuid.New().String(), post.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotOwner)
	repo.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
}

func TestCreateReplyRequiresExistingPost(t *testing.T) {
	repo := &mockForumRepo{}
	svc := NewForumService(repo)

	repo.On("GetPostWithReplies", mock.Anything, mock.Anything).Return(nil, nil)

	err := svc.CreateReply(context.Background(), uuid.New().String(), uuid.New().String(), request_models.CreateForumReplyRequest{
		Body: "Try the stalls behind the station.",
	})
	assert.ErrorIs(t, err, utils.ErrForumPostNotFound)
}
