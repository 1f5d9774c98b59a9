package postgres

import (
	"context"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// ListServices returns the whole catalog ordered by id.
func (repo *serviceRepository) ListServices(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// FindServiceByID retrieves a single catalog entry.
func (repo *serviceRepository) FindServiceByID(ctx context.Context, id int64) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

// CountServicesByIDs returns how many of ids exist in the catalog.
func (repo *serviceRepository) CountServicesByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}

	return count, nil
}

// FindSelectedServices returns the services the user has selected.
func (repo *serviceRepository) FindSelectedServices(ctx context.Context, userID uuid.UUID) ([]*entity.Service, error) {
	byUser, err := findSelectedServicesByUsers(ctx, repo.db, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}

	if services := byUser[userID]; services != nil {
		return services, nil
	}

	return []*entity.Service{}, nil
}

// ReplaceSelections makes ids the user's exact set of selected services.
func (repo *serviceRepository) ReplaceSelections(ctx context.Context, userID uuid.UUID, ids []int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&model.UserServiceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear service selections")
	}
	if len(ids) == 0 {
		return nil
	}

	rows := make([]*model.UserServiceModel, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, &model.UserServiceModel{UserID: userID, ServiceID: id, Selected: true})
	}

	if err := db.Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrServiceNotFound.WrapMessage("unknown service in selection")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save service selections")
	}

	return nil
}

// selectedServiceRow is one (user, service) pair of a batched selection lookup.
type selectedServiceRow struct {
	UserID uuid.UUID         `gorm:"column:user_id"`
	ID     int64             `gorm:"column:id"`
	Key    string            `gorm:"column:key"`
	Names  datatypes.JSONMap `gorm:"column:names"`
}

// findSelectedServicesByUsers loads the selected services of many users in one IN query.
func findSelectedServicesByUsers(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID][]*entity.Service, error) {
	result := make(map[uuid.UUID][]*entity.Service, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var rows []selectedServiceRow
	if err := db.WithContext(ctx).
		Table("user_services").
		Select("user_services.user_id, services.id, services.key, services.names").
		Joins("JOIN services ON services.id = user_services.service_id").
		Where("user_services.selected AND user_services.user_id IN ?", userIDs).
		Order("services.id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load selected services")
	}

	for _, row := range rows {
		result[row.UserID] = append(result[row.UserID], toServiceDomain(&model.ServiceModel{
			ID:    row.ID,
			Key:   row.Key,
			Names: row.Names,
		}))
	}

	return result, nil
}

// --- Mapper Functions ---

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	names := make(map[string]string, len(data.Names))
	for locale, name := range data.Names {
		if s, ok := name.(string); ok {
			names[locale] = s
		}
	}

	return &entity.Service{
		ID:    data.ID,
		Key:   data.Key,
		Names: names,
	}
}
