package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"tabiplan/internal/model"
	"tabiplan/internal/planner"
	"tabiplan/internal/refdata"
	"tabiplan/internal/repository"
)

// Sentinel errors surfaced to the HTTP layer
var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrDayNotFound       = errors.New("day not found")
	ErrInvalidRefinement = errors.New("unknown refinement type")
)

// TripService orchestrates the planning engine and persistence. The engine
// itself is pure; this layer owns ids, timestamps and the load-apply-save
// cycle, applying one edit at a time to the latest stored value.
type TripService struct {
	repo        *repository.TripRepository
	recommender *planner.Recommender
}

// NewTripService creates a new trip service
func NewTripService(repo *repository.TripRepository, recommender *planner.Recommender) *TripService {
	return &TripService{
		repo:        repo,
		recommender: recommender,
	}
}

// CreateTrip normalizes the planning intent, builds the initial itinerary
// and persists both
func (s *TripService) CreateTrip(ctx context.Context, name string, builder model.TripBuilderData) (*model.Trip, error) {
	builder.Normalize()

	trip := BuildTrip(s.recommender, name, &builder)
	trip.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, trip, &builder); err != nil {
		return nil, err
	}
	return trip, nil
}

// GetTrip fetches a trip, mapping absence to ErrTripNotFound
func (s *TripService) GetTrip(ctx context.Context, id string) (*model.Trip, error) {
	trip, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// ListTrips returns all live trips
func (s *TripService) ListTrips(ctx context.Context) ([]*model.Trip, error) {
	return s.repo.List(ctx)
}

// RenameTrip updates the trip name
func (s *TripService) RenameTrip(ctx context.Context, id, name string) (*model.Trip, error) {
	trip, err := s.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	renamed := &model.Trip{ID: trip.ID, Name: name, Days: trip.Days, UpdatedAt: time.Now().UTC()}
	if err := s.repo.Save(ctx, renamed, nil); err != nil {
		return nil, err
	}
	return renamed, nil
}

// DeleteTrip soft-deletes a trip
func (s *TripService) DeleteTrip(ctx context.Context, id string) error {
	found, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrTripNotFound
	}
	return nil
}

// AddActivity inserts an activity into a day and persists the result. A
// missing activity id or location snapshot is filled in from the catalog.
func (s *TripService) AddActivity(ctx context.Context, tripID, dayID string, activity model.TripActivity, position *int) (*model.Trip, error) {
	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Location == nil {
		if loc, ok := refdata.LocationByID(activity.LocationID); ok {
			activity.Location = &model.LocationSnapshot{
				Name:        loc.Name,
				Category:    loc.Category,
				Coordinates: loc.Coordinates,
			}
		}
	}

	return s.saveIfChanged(ctx, trip, planner.AddActivity(trip, dayID, activity, position))
}

// ReplaceActivity swaps an activity and persists the result
func (s *TripService) ReplaceActivity(ctx context.Context, tripID, dayID, activityID string, replacement model.TripActivity) (*model.Trip, error) {
	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if replacement.ID == "" {
		replacement.ID = uuid.NewString()
	}

	return s.saveIfChanged(ctx, trip, planner.ReplaceActivity(trip, dayID, activityID, replacement))
}

// DeleteActivity removes an activity and persists the result
func (s *TripService) DeleteActivity(ctx context.Context, tripID, dayID, activityID string) (*model.Trip, error) {
	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.saveIfChanged(ctx, trip, planner.DeleteActivity(trip, dayID, activityID))
}

// ReorderActivities rebuilds a day's activity order and persists the result
func (s *TripService) ReorderActivities(ctx context.Context, tripID, dayID string, orderedIDs []string) (*model.Trip, error) {
	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.saveIfChanged(ctx, trip, planner.ReorderActivities(trip, dayID, orderedIDs))
}

// RefineDay applies a qualitative refinement to one day, splices the
// revised day back into the trip and persists it. The engine's precondition
// that the day exists is validated here.
func (s *TripService) RefineDay(ctx context.Context, tripID string, dayIndex int, refinement planner.RefinementType) (*model.Trip, error) {
	if !planner.ValidRefinementType(refinement) {
		return nil, ErrInvalidRefinement
	}

	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(trip.Days) {
		return nil, ErrDayNotFound
	}

	revised := planner.RefineDay(trip, dayIndex, refinement)
	if revised == trip.Days[dayIndex] {
		return trip, nil
	}

	days := trip.CloneDays()
	days[dayIndex] = revised
	return s.saveIfChanged(ctx, trip, &model.Trip{ID: trip.ID, Name: trip.Name, Days: days, UpdatedAt: trip.UpdatedAt})
}

// saveIfChanged persists the updated trip unless the engine reported a
// no-op by returning the original pointer
func (s *TripService) saveIfChanged(ctx context.Context, original, updated *model.Trip) (*model.Trip, error) {
	if updated == original {
		return original, nil
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, updated, nil); err != nil {
		return nil, err
	}
	return updated, nil
}
