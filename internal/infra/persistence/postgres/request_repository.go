package postgres

import (
	"context"
	"time"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// CreateRequest persists a new request and fills in generated fields.
func (repo *requestRepository) CreateRequest(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or service reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindRequestByID retrieves a single request.
func (repo *requestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// LockRequestByID retrieves a request with SELECT ... FOR UPDATE so concurrent transitions serialize.
func (repo *requestRepository) LockRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to lock request")
	}

	return toRequestDomain(&requestM), nil
}

// UpdateRequestStatus sets the status and returns the updated record.
func (repo *requestRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) (*entity.Request, error) {
	var requestM model.RequestModel

	result := repo.db.WithContext(ctx).
		Model(&requestM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update request status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRequestNotFound
	}

	return toRequestDomain(&requestM), nil
}

// ListByElder returns the elder's requests newest first with the volunteer's name and the service.
func (repo *requestRepository) ListByElder(ctx context.Context, elderID uuid.UUID) ([]*entity.Request, error) {
	return repo.listWithCounterpart(ctx, "requests.elder_id", "requests.volunteer_id", elderID, entity.PartyElder)
}

// ListByVolunteer returns the volunteer's requests newest first with the elder's name and the service.
func (repo *requestRepository) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Request, error) {
	return repo.listWithCounterpart(ctx, "requests.volunteer_id", "requests.elder_id", volunteerID, entity.PartyVolunteer)
}

// requestRow is a request joined with the other party's name and the requested service.
type requestRow struct {
	model.RequestModel
	OtherFirstName string            `gorm:"column:other_first_name"`
	OtherLastName  string            `gorm:"column:other_last_name"`
	ServiceKey     string            `gorm:"column:service_key"`
	ServiceNames   datatypes.JSONMap `gorm:"column:service_names"`
}

func (repo *requestRepository) listWithCounterpart(ctx context.Context, ownColumn, otherColumn string, userID uuid.UUID, side entity.RequestParty) ([]*entity.Request, error) {
	var rows []*requestRow

	if err := repo.db.WithContext(ctx).
		Table("requests").
		Select("requests.*, other.first_name AS other_first_name, other.last_name AS other_last_name, "+
			"services.key AS service_key, services.names AS service_names").
		Joins("LEFT JOIN users AS other ON other.id = "+otherColumn).
		Joins("LEFT JOIN services ON services.id = requests.service_id").
		Where(ownColumn+" = ?", userID).
		Order("requests.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	requests := make([]*entity.Request, 0, len(rows))
	for _, row := range rows {
		request := toRequestDomain(&row.RequestModel)
		other := &entity.User{FirstName: row.OtherFirstName, LastName: row.OtherLastName}
		if side == entity.PartyElder {
			request.VolunteerName = other.FullName()
		} else {
			request.ElderName = other.FullName()
		}
		if row.ServiceKey != "" {
			request.Service = toServiceDomain(&model.ServiceModel{
				ID:    row.ServiceID,
				Key:   row.ServiceKey,
				Names: row.ServiceNames,
			})
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM RequestModel to a domain Request entity.
func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	return &entity.Request{
		ID:          data.ID,
		ElderID:     data.ElderID,
		VolunteerID: data.VolunteerID,
		ServiceID:   data.ServiceID,
		Slot: entity.Slot{
			DayOfWeek: entity.DayOfWeek(data.DayOfWeek),
			TimeOfDay: entity.TimeOfDay(data.TimeOfDay),
		},
		Details:   data.Details,
		Urgent:    data.Urgent,
		Status:    entity.RequestStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRequestDomain converts a domain Request entity to a GORM RequestModel.
func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:          data.ID,
		ElderID:     data.ElderID,
		VolunteerID: data.VolunteerID,
		ServiceID:   data.ServiceID,
		DayOfWeek:   string(data.Slot.DayOfWeek),
		TimeOfDay:   string(data.Slot.TimeOfDay),
		Details:     data.Details,
		Urgent:      data.Urgent,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
