package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	groupCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	groupCodeRandLen  = 6
)

type groupService struct {
	txManager repository.TransactionManager
	groupRepo repository.GroupRepository
	now       func() time.Time
	logger    *slog.Logger
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GroupRepo repository.GroupRepository
	Logger    *slog.Logger
}

// NewGroupService creates the store grouping use case.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager: params.TxManager,
		groupRepo: params.GroupRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds stores to an existing group, or to a new one when no code is given.
// Stores already in the group are left untouched.
func (srv *groupService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateGroupInput) (*usecase.GroupOutput, error) {
	if len(input.StoreIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one store is required")
	}

	var output *usecase.GroupOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		groupRepo := repoFactory.GroupRepo()

		group, isNew, err := srv.resolveGroup(ctx, groupRepo, userID, input)
		if err != nil {
			return err
		}

		added := 0
		for i, storeID := range input.StoreIDs {
			inserted, err := groupRepo.AddMember(ctx, &entity.GroupMember{
				GroupCode: group.Code,
				StoreID:   storeID,
				IsPrimary: isNew && i == 0,
			})
			if err != nil {
				return errors.Wrapf(err, "failed to add store %d to group", storeID)
			}
			if inserted {
				added++
			}
		}

		members, err := groupRepo.ListMembers(ctx, group.Code)
		if err != nil {
			return errors.Wrap(err, "failed to list group members")
		}

		output = &usecase.GroupOutput{Group: group, Members: members, AddedCount: added}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create group", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute group transaction")
	}
	srv.log(ctx).Info("Stores grouped", slog.String("code", output.Group.Code), slog.Int("added", output.AddedCount))

	return output, nil
}

func (srv *groupService) resolveGroup(ctx context.Context, groupRepo repository.GroupRepository, userID uuid.UUID, input *usecase.CreateGroupInput) (*entity.StoreGroup, bool, error) {
	if input.GroupCode != nil && strings.TrimSpace(*input.GroupCode) != "" {
		group, err := groupRepo.FindByCode(ctx, strings.TrimSpace(*input.GroupCode))
		if err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				return nil, false, domainerrors.ErrGroupNotFound
			}

			return nil, false, errors.Wrap(err, "failed to find group")
		}

		return group, false, nil
	}

	code := newGroupCode(srv.now())
	name := "گروه " + code
	if input.GroupName != nil && strings.TrimSpace(*input.GroupName) != "" {
		name = strings.TrimSpace(*input.GroupName)
	}

	group := &entity.StoreGroup{Code: code, Name: &name, CreatedBy: &userID}
	if err := groupRepo.Create(ctx, group); err != nil {
		return nil, false, errors.Wrap(err, "failed to create group")
	}

	return group, true, nil
}

// newGroupCode returns GRP-{unixMillis}-{6 uppercase alphanumerics}.
func newGroupCode(now time.Time) string {
	return fmt.Sprintf("GRP-%d-%s", now.UnixMilli(), randomString(groupCodeAlphabet, groupCodeRandLen))
}

// Get returns a group with its members.
func (srv *groupService) Get(ctx context.Context, code string) (*usecase.GroupOutput, error) {
	group, err := srv.groupRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group")
	}

	members, err := srv.groupRepo.ListMembers(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list group members")
	}

	return &usecase.GroupOutput{Group: group, Members: members}, nil
}

// ListByStore returns the groups a store belongs to.
func (srv *groupService) ListByStore(ctx context.Context, storeID int64) ([]*entity.StoreGroup, error) {
	groups, err := srv.groupRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store groups")
	}

	return groups, nil
}

// List returns all groups, newest first.
func (srv *groupService) List(ctx context.Context) ([]*entity.StoreGroup, error) {
	groups, err := srv.groupRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	return groups, nil
}

// Delete removes one membership, or the whole group when storeID is nil.
func (srv *groupService) Delete(ctx context.Context, code string, storeID *int64) error {
	var err error
	if storeID != nil {
		err = srv.groupRepo.RemoveMember(ctx, code, *storeID)
	} else {
		err = srv.groupRepo.Delete(ctx, code)
	}

	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return domainerrors.ErrGroupNotFound
		}

		return errors.Wrap(err, "failed to delete group")
	}
	srv.log(ctx).Info("Group updated", slog.String("code", code), slog.Bool("wholeGroup", storeID == nil))

	return nil
}
