package impl

import (
	"context"
	"log/slog"

	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/domain/service"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type matchService struct {
	userRepo         repository.UserRepository
	serviceRepo      repository.ServiceRepository
	availabilityRepo repository.AvailabilityRepository
	volunteerRepo    repository.VolunteerRepository
	reviewRepo       repository.ReviewRepository
	qrcodeSvc        service.QRCodeService
	logger           *slog.Logger
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	ServiceRepo      repository.ServiceRepository
	AvailabilityRepo repository.AvailabilityRepository
	VolunteerRepo    repository.VolunteerRepository
	ReviewRepo       repository.ReviewRepository
	QRCodeSvc        service.QRCodeService
	Logger           *slog.Logger
}

// NewMatchService creates a new match service instance
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		userRepo:         params.UserRepo,
		serviceRepo:      params.ServiceRepo,
		availabilityRepo: params.AvailabilityRepo,
		volunteerRepo:    params.VolunteerRepo,
		reviewRepo:       params.ReviewRepo,
		qrcodeSvc:        params.QRCodeSvc,
		logger:           params.Logger,
	}
}

func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MatchVolunteers loads the elder's stored preferences and returns every volunteer satisfying all of them.
func (srv *matchService) MatchVolunteers(ctx context.Context, elderID uuid.UUID) ([]*entity.Volunteer, error) {
	elder, err := srv.userRepo.FindByID(ctx, elderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("elder not found")
		}

		return nil, errors.Wrap(err, "failed to find elder")
	}

	services, err := srv.serviceRepo.FindSelectedServices(ctx, elderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find elder services")
	}

	slots, err := srv.availabilityRepo.FindSelectedSlots(ctx, elderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find elder availability")
	}

	criteria := repository.MatchCriteria{
		ElderID:    elderID,
		ServiceIDs: make([]int64, 0, len(services)),
		SlotKeys:   make([]string, 0, len(slots)),
		Gender:     entity.NormalizeText(elder.Gender),
		City:       entity.NormalizeText(elder.City),
	}
	for _, s := range services {
		criteria.ServiceIDs = append(criteria.ServiceIDs, s.ID)
	}
	for _, slot := range slots {
		criteria.SlotKeys = append(criteria.SlotKeys, slot.Key())
	}

	if len(criteria.ServiceIDs) == 0 || len(criteria.SlotKeys) == 0 || criteria.Gender == "" || criteria.City == "" {
		srv.log(ctx).Debug("Preferences incomplete, skipping match query",
			slog.Any("elderID", elderID),
			slog.Int("services", len(criteria.ServiceIDs)),
			slog.Int("slots", len(criteria.SlotKeys)),
			slog.Bool("hasGender", criteria.Gender != ""),
			slog.Bool("hasCity", criteria.City != ""),
		)

		return []*entity.Volunteer{}, nil
	}

	volunteers, err := srv.volunteerRepo.FindMatches(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matching volunteers")
	}

	srv.log(ctx).Debug("Match completed", slog.Any("elderID", elderID), slog.Int("matches", len(volunteers)))

	return volunteers, nil
}

// ListVolunteers returns every volunteer offering at least one service.
func (srv *matchService) ListVolunteers(ctx context.Context) ([]*entity.Volunteer, error) {
	volunteers, err := srv.volunteerRepo.ListVolunteers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list volunteers")
	}

	return volunteers, nil
}

// GetVolunteer returns a volunteer's public profile with their reviews.
func (srv *matchService) GetVolunteer(ctx context.Context, volunteerID uuid.UUID) (*usecase.VolunteerProfile, error) {
	volunteer, err := srv.findVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list volunteer reviews")
	}

	return &usecase.VolunteerProfile{
		Volunteer:  volunteer,
		ProfileURL: srv.qrcodeSvc.ProfileURL(volunteerID),
		Reviews:    reviews,
	}, nil
}

// GetVolunteerQRCode renders the share code of an existing volunteer.
func (srv *matchService) GetVolunteerQRCode(ctx context.Context, volunteerID uuid.UUID) ([]byte, error) {
	if _, err := srv.findVolunteer(ctx, volunteerID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeSvc.GenerateProfileQR(volunteerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate volunteer QR code")
	}

	return png, nil
}

// ResolveProfileLink resolves a scanned share link to the volunteer profile it points to.
func (srv *matchService) ResolveProfileLink(ctx context.Context, input *usecase.ScanProfileInput) (*usecase.VolunteerProfile, error) {
	volunteerID, err := srv.qrcodeSvc.ParseProfileURL(input.Link)
	if err != nil {
		srv.log(ctx).Debug("Rejected share link", slog.String("link", input.Link), slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WithDetails("link is not a volunteer profile link")
	}

	return srv.GetVolunteer(ctx, volunteerID)
}

func (srv *matchService) findVolunteer(ctx context.Context, volunteerID uuid.UUID) (*entity.Volunteer, error) {
	volunteer, err := srv.volunteerRepo.FindVolunteerByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrVolunteerNotFound.WrapMessage("volunteer not found")
		}

		return nil, errors.Wrap(err, "failed to find volunteer")
	}

	return volunteer, nil
}
