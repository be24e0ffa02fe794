package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/planner"
	"yatra/pkg/utils"
)

type mockItineraryRepo struct {
	mock.Mock
}

func (m *mockItineraryRepo) CreateWithActivities(ctx context.Context, itinerary *db_models.UserItinerary, activities []db_models.ItineraryActivity) (uuid.UUID, error) {
	args := m.Called(ctx, itinerary, activities)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockItineraryRepo) ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]db_models.UserItinerary, error) {
	args := m.Called(ctx, page, pageSize, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.UserItinerary), args.Error(1)
}

func (m *mockItineraryRepo) GetByIdWithActivities(ctx context.Context, id string) (*db_models.UserItinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.UserItinerary), args.Error(1)
}

func (m *mockItineraryRepo) ReplaceActivities(ctx context.Context, itinerary *db_models.UserItinerary, activities []db_models.ItineraryActivity) error {
	args := m.Called(ctx, itinerary, activities)
	return args.Error(0)
}

func (m *mockItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestItineraryService(repo *mockItineraryRepo) ItineraryServiceInterface {
	return NewItineraryService(repo, planner.New(rand.New(rand.NewSource(1))))
}

func TestGenerateItineraryRejectsInvalidDays(t *testing.T) {
	svc := newTestItineraryService(&mockItineraryRepo{})

	_, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{Days: 0})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateItineraryReturnsRequestedDays(t *testing.T) {
	svc := newTestItineraryService(&mockItineraryRepo{})

	plan, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		Days:        2,
		IncludeFood: true,
		Locations:   []string{"Vashi"},
	})
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, 1, plan[0].Day)
	assert.Equal(t, 2, plan[1].Day)
	assert.NotEmpty(t, plan[0].Activities)
}

func TestSaveItineraryRejectsBadUserId(t *testing.T) {
	svc := newTestItineraryService(&mockItineraryRepo{})

	_, err := svc.SaveItinerary(context.Background(), "not-a-uuid", request_models.SaveItineraryRequest{
		Title: "Weekend",
		Days:  1,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSaveItineraryPersistsActivities(t *testing.T) {
	repo := &mockItineraryRepo{}
	svc := newTestItineraryService(repo)

	userId := uuid.New()
	savedId := uuid.New()
	repo.On("CreateWithActivities", mock.Anything, mock.Anything, mock.Anything).Return(savedId, nil)

	id, err := svc.SaveItinerary(context.Background(), userId.String(), request_models.SaveItineraryRequest{
		Title: "Vashi day out",
		Days:  1,
		Activities: []request_models.ItineraryActivityIn{
			{Day: 1, Time: planner.SlotMorning, Title: "Mini Seashore", Location: "Vashi"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, savedId.String(), id)

	repo.AssertCalled(t, "CreateWithActivities", mock.Anything, mock.MatchedBy(func(it *db_models.UserItinerary) bool {
		return it.UserID == userId && it.Title == "Vashi day out"
	}), mock.MatchedBy(func(activities []db_models.ItineraryActivity) bool {
		return len(activities) == 1 && activities[0].Title == "Mini Seashore"
	}))
}

func TestSaveItineraryWrapsRepositoryFailure(t *testing.T) {
	repo := &mockItineraryRepo{}
	svc := newTestItineraryService(repo)

	repo.On("CreateWithActivities", mock.Anything, mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("connection refused"))

	_, err := svc.SaveItinerary(context.Background(), uuid.New().String(), request_models.SaveItineraryRequest{
		Title: "Weekend",
		Days:  1,
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetItineraryDetailsNotFound(t *testing.T) {
	repo := &mockItineraryRepo{}
	svc := newTestItineraryService(repo)

	repo.On("GetByIdWithActivities", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.GetItineraryDetailsById(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestGetItineraryDetailsRejectsOtherUsers(t *testing.T) {
	repo := &mockItineraryRepo{}
	svc := newTestItineraryService(repo)

	owner := uuid.New()
	stored := &db_models.UserItinerary{UserID: owner, Title: "Private trip"}
	stored.ID = uuid.New()
	repo.On("GetByIdWithActivities", mock.Anything, stored.ID.String()).Return(stored, nil)

	_, err := svc.GetItineraryDetailsById(context.Background(), uuid.New().String(), stored.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotOwner)
}

func TestGetItineraryDetailsGroupsActivitiesBySlotOrder(t *testing.T) {
	repo := &mockItineraryRepo{}
	svc := newTestItineraryService(repo)

	owner := uuid.New()
	stored := &db_models.UserItinerary{UserID: owner, Title: "Two days", Days: 2}
	stored.ID = uuid.New()
	stored.Activities = []db_models.ItineraryActivity{
		{Day: 2, Time: planner.SlotMorning, Title: "Day 2 morning"},
		{Day: 1, Time: planner.SlotDinner, Title: "Day 1 dinner"},
		{Day: 1, Time: planner.SlotMorning, Title: "Day 1 morning"},
		{Day: 1, Time: planner.SlotAfternoon, Title: "Day 1 afternoon"},
	}
	repo.On("GetByIdWithActivities", mock.Anything, stored.ID.String()).Return(stored, nil)

	details, err := svc.GetItineraryDetailsById(context.Background(), owner.String(), stored.ID.String())
	require.NoError(t, err)
	require.Len(t, details.Plan, 2)

	day1 := details.Plan[0]
	require.Len(t, day1.Activities, 3)
	assert.Equal(t, "Day 1 morning", day1.Activities[0].Title)
	assert.Equal(t, "Day 1 afternoon", day1.Activities[1].Title)
	assert.Equal(t, "Day 1 dinner", day1.Activities[2].Title)

	require.Len(t, details.Plan[1].Activities, 1)
	assert.Equal(t, "Day 2 morning", details.Plan[1].Activities[0].Title)
}

func TestDeleteItineraryRejectsOtherUsers(t *testing.T) {
	repo := &mockItineraryRepo{}
	svc := newTestItineraryService(repo)

	stored := &db_models.UserItinerary{UserID: uuid.New()}
	stored.ID = uuid.New()
	repo.On("GetByIdWithActivities", mock.Anything, stored.ID.String()).Return(stored, nil)

	err := svc.DeleteItinerary(context.Background(), uuid.New().String(), stored.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
