package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/planner"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, request request_models.GenerateItineraryRequest) ([]planner.DayPlan, error)
	SaveItinerary(ctx context.Context, userId string, request request_models.SaveItineraryRequest) (string, error)
	GetListOfItinerariesByUserId(ctx context.Context, page, pageSize int, userId string) ([]response_models.ItineraryResponse, error)
	GetItineraryDetailsById(ctx context.Context, userId, itineraryId string) (*response_models.ItineraryDetailResponse, error)
	UpdateItinerary(ctx context.Context, userId, itineraryId string, request request_models.SaveItineraryRequest) error
	DeleteItinerary(ctx context.Context, userId, itineraryId string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	planner       *planner.Planner
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, p *planner.Planner) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		planner:       p,
	}
}

// GenerateItinerary runs the planner only; nothing is persisted until the
// caller saves the result.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, request request_models.GenerateItineraryRequest) ([]planner.DayPlan, error) {
	if request.Days < 1 {
		return nil, utils.ErrInvalidInput
	}
	return s.planner.Generate(request.ToOptions()), nil
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, userId string, request request_models.SaveItineraryRequest) (string, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	itinerary := &db_models.UserItinerary{
		UserID:         userUUID,
		Title:          request.Title,
		Days:           request.Days,
		Pace:           request.Pace,
		Budget:         request.Budget,
		Interests:      pq.StringArray(request.Interests),
		Transportation: request.Transportation,
		IncludeFood:    request.IncludeFood,
	}
	if request.StartDate != "" {
		if start, err := time.Parse(time.RFC3339, request.StartDate); err == nil {
			itinerary.StartDate = &start
		}
	}

	activities := make([]db_models.ItineraryActivity, 0, len(request.Activities))
	for _, a := range request.Activities {
		activities = append(activities, db_models.ItineraryActivity{
			Day:         a.Day,
			Time:        a.Time,
			Title:       a.Title,
			Location:    a.Location,
			Description: a.Description,
			Image:       a.Image,
			Category:    a.Category,
		})
	}

	id, err := s.itineraryRepo.CreateWithActivities(ctx, itinerary, activities)
	if err != nil {
		log.Printf("Error saving itinerary: %v", err)
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (s *ItineraryService) GetListOfItinerariesByUserId(ctx context.Context, page, pageSize int, userId string) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.ListByUserId(ctx, page, pageSize, userId)
	if err != nil {
		log.Printf("Error listing itineraries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		out = append(out, buildItineraryResponse(&it))
	}
	return out, nil
}

func (s *ItineraryService) GetItineraryDetailsById(ctx context.Context, userId, itineraryId string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.itineraryRepo.GetByIdWithActivities(ctx, itineraryId)
	if err != nil {
		log.Printf("Error fetching itinerary %s: %v", itineraryId, err)
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.UserID.String() != userId {
		return nil, utils.ErrNotOwner
	}

	return &response_models.ItineraryDetailResponse{
		Details: buildItineraryResponse(itinerary),
		Plan:    groupActivitiesByDay(itinerary),
	}, nil
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, userId, itineraryId string, request request_models.SaveItineraryRequest) error {
	existing, err := s.itineraryRepo.GetByIdWithActivities(ctx, itineraryId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrItineraryNotFound
	}
	if existing.UserID.String() != userId {
		return utils.ErrNotOwner
	}

	existing.Title = request.Title
	existing.Days = request.Days
	existing.Pace = request.Pace
	existing.Budget = request.Budget
	existing.Interests = pq.StringArray(request.Interests)
	existing.Transportation = request.Transportation
	existing.IncludeFood = request.IncludeFood
	if request.StartDate != "" {
		if start, err := time.Parse(time.RFC3339, request.StartDate); err == nil {
			existing.StartDate = &start
		}
	}

	activities := make([]db_models.ItineraryActivity, 0, len(request.Activities))
	for _, a := range request.Activities {
		activities = append(activities, db_models.ItineraryActivity{
			Day:         a.Day,
			Time:        a.Time,
			Title:       a.Title,
			Location:    a.Location,
			Description: a.Description,
			Image:       a.Image,
			Category:    a.Category,
		})
	}
	existing.Activities = nil

	if err := s.itineraryRepo.ReplaceActivities(ctx, existing, activities); err != nil {
		log.Printf("Error updating itinerary %s: %v", itineraryId, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, userId, itineraryId string) error {
	existing, err := s.itineraryRepo.GetByIdWithActivities(ctx, itineraryId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrItineraryNotFound
	}
	if existing.UserID.String() != userId {
		return utils.ErrNotOwner
	}

	if err := s.itineraryRepo.Delete(ctx, existing.ID); err != nil {
		log.Printf("Error deleting itinerary %s: %v", itineraryId, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func buildItineraryResponse(it *db_models.UserItinerary) response_models.ItineraryResponse {
	resp := response_models.ItineraryResponse{
		ID:             it.ID.String(),
		Title:          it.Title,
		Days:           it.Days,
		Pace:           it.Pace,
		Budget:         it.Budget,
		Interests:      []string(it.Interests),
		Transportation: it.Transportation,
		IncludeFood:    it.IncludeFood,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
	if it.StartDate != nil {
		resp.StartDate = it.StartDate.Format(time.RFC3339)
	}
	return resp
}

// groupActivitiesByDay rebuilds the day structure from flat activity rows,
// preserving the fixed slot order within each day.
func groupActivitiesByDay(it *db_models.UserItinerary) []planner.DayPlan {
	slotOrder := map[string]int{
		planner.SlotMorning:   0,
		planner.SlotLunch:     1,
		planner.SlotAfternoon: 2,
		planner.SlotEvening:   3,
		planner.SlotDinner:    4,
	}

	byDay := make(map[int][]planner.ScheduledActivity)
	maxDay := 0
	for _, a := range it.Activities {
		byDay[a.Day] = append(byDay[a.Day], planner.ScheduledActivity{
			Time:        a.Time,
			Title:       a.Title,
			Location:    a.Location,
			Description: a.Description,
			Image:       a.Image,
			Category:    a.Category,
		})
		if a.Day > maxDay {
			maxDay = a.Day
		}
	}

	plan := make([]planner.DayPlan, 0, maxDay)
	for day := 1; day <= maxDay; day++ {
		activities := byDay[day]
		for i := 1; i < len(activities); i++ {
			for j := i; j > 0 && slotOrder[activities[j].Time] < slotOrder[activities[j-1].Time]; j-- {
				activities[j], activities[j-1] = activities[j-1], activities[j]
			}
		}
		plan = append(plan, planner.DayPlan{Day: day, Activities: activities})
	}
	return plan
}
