package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	serviceRepo      repository.ServiceRepository
	availabilityRepo repository.AvailabilityRepository
	logger           *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	ServiceRepo      repository.ServiceRepository
	AvailabilityRepo repository.AvailabilityRepository
	Logger           *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		serviceRepo:      params.ServiceRepo,
		availabilityRepo: params.AvailabilityRepo,
		logger:           params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input to the caller's profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Gender != nil {
		user.Gender = strings.TrimSpace(*input.Gender)
	}
	if input.City != nil {
		user.City = strings.TrimSpace(*input.City)
	}
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}

	if user.FirstName == "" || user.LastName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("first and last name cannot be blank")
	}

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// SwitchRole changes the mode the caller acts in.
func (srv *profileService) SwitchRole(ctx context.Context, userID uuid.UUID, input *usecase.SwitchRoleInput) (*entity.User, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be elder or volunteer")
	}

	if err := srv.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to update role")
	}

	srv.log(ctx).Info("User switched role", slog.Any("userID", userID), slog.String("role", role.String()))

	// Re-read so volunteer stats are attached or dropped to match the new role.
	return srv.GetProfile(ctx, userID)
}

// GetServices returns the caller's selected services.
func (srv *profileService) GetServices(ctx context.Context, userID uuid.UUID) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.FindSelectedServices(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find selected services")
	}

	return services, nil
}

// UpdateServices replaces the caller's selected services.
func (srv *profileService) UpdateServices(ctx context.Context, userID uuid.UUID, input *usecase.UpdateServicesInput) ([]*entity.Service, error) {
	ids := dedupeServiceIDs(input.ServiceIDs)

	var services []*entity.Service
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.NewServiceRepository()

		if err := replaceServiceSelections(ctx, serviceRepo, userID, ids); err != nil {
			return err
		}

		var err error
		services, err = serviceRepo.FindSelectedServices(ctx, userID)

		return errors.Wrap(err, "failed to reload selected services")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute service selection transaction")
	}

	srv.log(ctx).Debug("Service selections replaced", slog.Any("userID", userID), slog.Int("count", len(services)))

	return services, nil
}

// GetAvailability returns the caller's selected slots in grid order.
func (srv *profileService) GetAvailability(ctx context.Context, userID uuid.UUID) ([]entity.Slot, error) {
	slots, err := srv.availabilityRepo.FindSelectedSlots(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find availability")
	}

	return slots, nil
}

// UpdateAvailability replaces the caller's availability grid. An empty list clears it.
func (srv *profileService) UpdateAvailability(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAvailabilityInput) ([]entity.Slot, error) {
	slots, err := parseSlots(input.Availability)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(
			repoFactory.NewAvailabilityRepository().ReplaceSlots(ctx, userID, slots),
			"failed to replace availability",
		)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute availability transaction")
	}

	srv.log(ctx).Debug("Availability replaced", slog.Any("userID", userID), slog.Int("count", len(slots)))

	return sortSlots(slots), nil
}

// SavePreferences replaces services and availability in a single transaction.
func (srv *profileService) SavePreferences(ctx context.Context, userID uuid.UUID, input *usecase.SavePreferencesInput) (*usecase.PreferencesOutput, error) {
	slots, err := parseSlots(input.Availability)
	if err != nil {
		return nil, err
	}
	ids := dedupeServiceIDs(input.ServiceIDs)

	output := &usecase.PreferencesOutput{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.NewServiceRepository()

		if err := replaceServiceSelections(ctx, serviceRepo, userID, ids); err != nil {
			return err
		}

		if err := repoFactory.NewAvailabilityRepository().ReplaceSlots(ctx, userID, slots); err != nil {
			return errors.Wrap(err, "failed to replace availability")
		}

		var err error
		output.Services, err = serviceRepo.FindSelectedServices(ctx, userID)

		return errors.Wrap(err, "failed to reload selected services")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute preferences transaction")
	}

	output.Availability = sortSlots(slots)
	srv.log(ctx).Info("Preferences saved",
		slog.Any("userID", userID),
		slog.Int("services", len(output.Services)),
		slog.Int("slots", len(output.Availability)),
	)

	return output, nil
}

// replaceServiceSelections checks every id against the catalog before replacing the selection.
func replaceServiceSelections(ctx context.Context, serviceRepo repository.ServiceRepository, userID uuid.UUID, ids []int64) error {
	if len(ids) > 0 {
		count, err := serviceRepo.CountServicesByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to count services")
		}
		if count != int64(len(ids)) {
			return domainerrors.ErrServiceNotFound.WrapMessage("one or more services do not exist")
		}
	}

	if err := serviceRepo.ReplaceSelections(ctx, userID, ids); err != nil {
		return errors.Wrap(err, "failed to replace service selections")
	}

	return nil
}

// parseSlots normalizes client slots, rejecting the whole list if any cell is unknown.
func parseSlots(inputs []usecase.SlotInput) ([]entity.Slot, error) {
	slots := make([]entity.Slot, 0, len(inputs))
	for _, in := range inputs {
		slot, ok := entity.NewSlot(in.DayOfWeek, in.TimeOfDay)
		if !ok {
			return nil, errors.Wrapf(domainerrors.ErrInvalidSlot, "unknown slot %q/%q", in.DayOfWeek, in.TimeOfDay)
		}
		slots = append(slots, slot)
	}

	return entity.DedupeSlots(slots), nil
}

func sortSlots(slots []entity.Slot) []entity.Slot {
	sorted := slices.Clone(slots)
	slices.SortFunc(sorted, func(a, b entity.Slot) int {
		return a.Index() - b.Index()
	})

	return sorted
}

func dedupeServiceIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)

	return slices.Compact(out)
}
