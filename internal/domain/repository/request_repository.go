package repository

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRequestNotFound is returned when a help request does not exist.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository persists help requests. Requests are never deleted.
type RequestRepository interface {
	// CreateRequest persists a new request and fills in generated fields.
	CreateRequest(ctx context.Context, request *entity.Request) error

	// FindRequestByID retrieves a single request.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)
	// LockRequestByID retrieves a request and holds a row lock on it until the surrounding transaction ends.
	LockRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)

	// UpdateRequestStatus sets the status and returns the updated record.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) (*entity.Request, error)

	// ListByElder returns the elder's requests newest first with the volunteer's name and the service.
	ListByElder(ctx context.Context, elderID uuid.UUID) ([]*entity.Request, error)

	// ListByVolunteer returns the volunteer's requests newest first with the elder's name and the service.
	ListByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Request, error)
}
