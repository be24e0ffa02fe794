package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "yatra/internal/models/db_models"
)

type ItineraryRepository interface {
	// CreateWithActivities stores the parent record and all activity rows in
	// one transaction; partial saves are never visible.
	CreateWithActivities(ctx context.Context, itinerary *dbm.UserItinerary, activities []dbm.ItineraryActivity) (uuid.UUID, error)
	ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]dbm.UserItinerary, error)
	GetByIdWithActivities(ctx context.Context, id string) (*dbm.UserItinerary, error)
	// ReplaceActivities updates the parent fields and swaps the activity set.
	ReplaceActivities(ctx context.Context, itinerary *dbm.UserItinerary, activities []dbm.ItineraryActivity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateWithActivities(
	ctx context.Context,
	itinerary *dbm.UserItinerary,
	activities []dbm.ItineraryActivity,
) (uuid.UUID, error) {
	var outID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(itinerary).Error; err != nil {
			return err
		}
		outID = itinerary.ID

		for i := range activities {
			activities[i].ItineraryID = itinerary.ID
		}
		if len(activities) > 0 {
			if err := tx.Create(&activities).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return outID, nil
}

func (r *itineraryRepository) ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]dbm.UserItinerary, error) {
	var itineraries []dbm.UserItinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) GetByIdWithActivities(ctx context.Context, id string) (*dbm.UserItinerary, error) {
	var itinerary dbm.UserItinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ReplaceActivities(
	ctx context.Context,
	itinerary *dbm.UserItinerary,
	activities []dbm.ItineraryActivity,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(itinerary).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", itinerary.ID).
			Delete(&dbm.ItineraryActivity{}).Error; err != nil {
			return err
		}
		for i := range activities {
			activities[i].ItineraryID = itinerary.ID
		}
		if len(activities) > 0 {
			if err := tx.Create(&activities).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *itineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("itinerary_id = ?", id).
			Delete(&dbm.ItineraryActivity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.UserItinerary{}, "id = ?", id).Error
	})
}
