package postgres

import (
	"context"

	"neighborly/internal/domain/entity"
	"neighborly/internal/domain/repository"
	"neighborly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	// volunteerOrder ranks best rated first; unrated volunteers sort last.
	volunteerOrder = "users.rating DESC NULLS LAST, users.review_count DESC, users.id"

	hasSelectedServiceIn = "EXISTS (SELECT 1 FROM user_services us " +
		"WHERE us.user_id = users.id AND us.selected AND us.service_id IN ?)"
	hasSelectedSlotIn = "EXISTS (SELECT 1 FROM availability a " +
		"WHERE a.user_id = users.id AND a.selected AND a.day_of_week || '-' || a.time_of_day IN ?)"
	hasAnySelectedService = "EXISTS (SELECT 1 FROM user_services us " +
		"WHERE us.user_id = users.id AND us.selected)"
)

// volunteerRepository implements the repository.VolunteerRepository interface.
type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository is the constructor for volunteerRepository.
func NewVolunteerRepository(db *gorm.DB) repository.VolunteerRepository {
	return &volunteerRepository{
		db: db,
	}
}

// FindMatches returns volunteers that share at least one service and one slot with the elder
// and have the same normalized gender and city, best rated first.
func (repo *volunteerRepository) FindMatches(ctx context.Context, criteria repository.MatchCriteria) ([]*entity.Volunteer, error) {
	if len(criteria.ServiceIDs) == 0 || len(criteria.SlotKeys) == 0 || criteria.Gender == "" || criteria.City == "" {
		return []*entity.Volunteer{}, nil
	}

	var userModels []*model.UserModel
	if err := matchQuery(repo.db.WithContext(ctx), criteria).Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to match volunteers")
	}

	return repo.withOfferings(ctx, userModels)
}

// matchQuery expects gender and city already lower-cased and trimmed; the stored columns are folded the same way.
func matchQuery(db *gorm.DB, criteria repository.MatchCriteria) *gorm.DB {
	return db.Model(&model.UserModel{}).
		Where("users.role = ?", entity.RoleVolunteer.String()).
		Where("users.id <> ?", criteria.ElderID).
		Where("lower(trim(users.gender)) = ?", criteria.Gender).
		Where("lower(trim(users.city)) = ?", criteria.City).
		Where(hasSelectedServiceIn, criteria.ServiceIDs).
		Where(hasSelectedSlotIn, criteria.SlotKeys).
		Order(volunteerOrder)
}

// ListVolunteers returns every volunteer with at least one selected service, best rated first.
func (repo *volunteerRepository) ListVolunteers(ctx context.Context) ([]*entity.Volunteer, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("users.role = ?", entity.RoleVolunteer.String()).
		Where(hasAnySelectedService).
		Order(volunteerOrder).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list volunteers")
	}

	return repo.withOfferings(ctx, userModels)
}

// FindVolunteerByID returns a single user currently acting as a volunteer.
func (repo *volunteerRepository) FindVolunteerByID(ctx context.Context, id uuid.UUID) (*entity.Volunteer, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, entity.RoleVolunteer.String()).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find volunteer by ID")
	}

	volunteers, err := repo.withOfferings(ctx, []*model.UserModel{&userM})
	if err != nil {
		return nil, err
	}

	return volunteers[0], nil
}

// withOfferings attaches every selected service and slot of each volunteer using two batched
// IN queries, preserving the order of userModels.
func (repo *volunteerRepository) withOfferings(ctx context.Context, userModels []*model.UserModel) ([]*entity.Volunteer, error) {
	volunteers := make([]*entity.Volunteer, 0, len(userModels))
	if len(userModels) == 0 {
		return volunteers, nil
	}

	ids := make([]uuid.UUID, 0, len(userModels))
	for _, userM := range userModels {
		ids = append(ids, userM.ID)
	}

	servicesByUser, err := findSelectedServicesByUsers(ctx, repo.db, ids)
	if err != nil {
		return nil, err
	}
	slotsByUser, err := findSelectedSlotsByUsers(ctx, repo.db, ids)
	if err != nil {
		return nil, err
	}

	for _, userM := range userModels {
		volunteer := &entity.Volunteer{
			User:           *toUserDomain(userM),
			Services:       servicesByUser[userM.ID],
			Availabilities: slotsByUser[userM.ID],
		}
		if volunteer.Services == nil {
			volunteer.Services = []*entity.Service{}
		}
		if volunteer.Availabilities == nil {
			volunteer.Availabilities = []entity.Slot{}
		}
		volunteers = append(volunteers, volunteer)
	}

	return volunteers, nil
}
