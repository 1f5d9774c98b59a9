package postgres

import (
	"cmp"
	"context"
	"slices"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// availabilityRepository implements the repository.AvailabilityRepository interface.
type availabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository is the constructor for availabilityRepository.
func NewAvailabilityRepository(db *gorm.DB) repository.AvailabilityRepository {
	return &availabilityRepository{
		db: db,
	}
}

// FindSelectedSlots returns the user's selected slots in grid order.
func (repo *availabilityRepository) FindSelectedSlots(ctx context.Context, userID uuid.UUID) ([]entity.Slot, error) {
	byUser, err := findSelectedSlotsByUsers(ctx, repo.db, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}

	if slots := byUser[userID]; slots != nil {
		return slots, nil
	}

	return []entity.Slot{}, nil
}

// ReplaceSlots deletes the user's slots and inserts slots as selected.
func (repo *availabilityRepository) ReplaceSlots(ctx context.Context, userID uuid.UUID, slots []entity.Slot) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&model.AvailabilityModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear availability")
	}

	slots = entity.DedupeSlots(slots)
	if len(slots) == 0 {
		return nil
	}

	rows := make([]*model.AvailabilityModel, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, &model.AvailabilityModel{
			UserID:    userID,
			DayOfWeek: string(slot.DayOfWeek),
			TimeOfDay: string(slot.TimeOfDay),
			Selected:  true,
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidSlot.WrapMessage("slot rejected by the database")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save availability")
	}

	return nil
}

// findSelectedSlotsByUsers loads the selected slots of many users in one IN query.
func findSelectedSlotsByUsers(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID][]entity.Slot, error) {
	result := make(map[uuid.UUID][]entity.Slot, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var rows []*model.AvailabilityModel
	if err := db.WithContext(ctx).
		Where("selected AND user_id IN ?", userIDs).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load availability")
	}

	for _, row := range rows {
		slot := entity.Slot{DayOfWeek: entity.DayOfWeek(row.DayOfWeek), TimeOfDay: entity.TimeOfDay(row.TimeOfDay)}
		result[row.UserID] = append(result[row.UserID], slot)
	}
	for userID := range result {
		slices.SortFunc(result[userID], func(a, b entity.Slot) int {
			return cmp.Compare(a.Index(), b.Index())
		})
	}

	return result, nil
}
