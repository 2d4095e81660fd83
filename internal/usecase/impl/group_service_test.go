package impl

import (
	"context"
	"regexp"
	"testing"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	mockRepo "storeradar/internal/mocks/repository"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type groupServiceFixtures struct {
	service   usecase.GroupUsecase
	txManager *mockRepo.MockTransactionManager
	groupRepo *mockRepo.MockGroupRepository
	txGroups  *mockRepo.MockGroupRepository
}

func createTestGroupService(t *testing.T) groupServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)

	return groupServiceFixtures{
		service:   NewGroupService(GroupServiceParams{TxManager: txManager, GroupRepo: groupRepo, Logger: newDiscardLogger()}),
		txManager: txManager,
		groupRepo: groupRepo,
		txGroups:  mockRepo.NewMockGroupRepository(t),
	}
}

func (fx groupServiceFixtures) inTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().GroupRepo().Return(fx.txGroups)
	runInTx(fx.txManager, factory)
}

func TestGroupService_Create_NewGroup(t *testing.T) {
	fx := createTestGroupService(t)
	fx.inTx(t)
	ctx := context.Background()
	userID := uuid.New()

	var created *entity.StoreGroup
	fx.txGroups.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.StoreGroup")).
		RunAndReturn(func(_ context.Context, group *entity.StoreGroup) error {
			created = group

			return nil
		})
	fx.txGroups.EXPECT().
		AddMember(ctx, mock.MatchedBy(func(m *entity.GroupMember) bool { return m.StoreID == 1 && m.IsPrimary })).
		Return(true, nil)
	fx.txGroups.EXPECT().
		AddMember(ctx, mock.MatchedBy(func(m *entity.GroupMember) bool { return m.StoreID == 2 && !m.IsPrimary })).
		Return(true, nil)
	fx.txGroups.EXPECT().ListMembers(ctx, mock.AnythingOfType("string")).Return([]*entity.GroupMember{{StoreID: 1}, {StoreID: 2}}, nil)

	out, err := fx.service.Create(ctx, userID, &usecase.CreateGroupInput{StoreIDs: []int64{1, 2}})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Regexp(t, regexp.MustCompile(`^GRP-\d+-[A-Z0-9]{6}$`), out.Group.Code)
	assert.Equal(t, "گروه "+out.Group.Code, *out.Group.Name)
	assert.Equal(t, userID, *out.Group.CreatedBy)
	assert.Equal(t, 2, out.AddedCount)
	assert.Len(t, out.Members, 2)
}

func TestGroupService_Create_ExistingGroupCountsOnlyNewMembers(t *testing.T) {
	fx := createTestGroupService(t)
	fx.inTx(t)
	ctx := context.Background()

	fx.txGroups.EXPECT().FindByCode(ctx, "GRP-1").Return(&entity.StoreGroup{Code: "GRP-1"}, nil)
	fx.txGroups.EXPECT().AddMember(ctx, mock.MatchedBy(func(m *entity.GroupMember) bool { return m.StoreID == 1 })).Return(false, nil)
	fx.txGroups.EXPECT().AddMember(ctx, mock.MatchedBy(func(m *entity.GroupMember) bool { return m.StoreID == 5 && !m.IsPrimary })).Return(true, nil)
	fx.txGroups.EXPECT().ListMembers(ctx, "GRP-1").Return(nil, nil)

	out, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateGroupInput{StoreIDs: []int64{1, 5}, GroupCode: ptr("GRP-1")})
	require.NoError(t, err)
	assert.Equal(t, 1, out.AddedCount)
}

func TestGroupService_Create_UnknownCode(t *testing.T) {
	fx := createTestGroupService(t)
	fx.inTx(t)
	ctx := context.Background()

	fx.txGroups.EXPECT().FindByCode(ctx, "GRP-X").Return(nil, repository.ErrGroupNotFound)

	_, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateGroupInput{StoreIDs: []int64{1}, GroupCode: ptr("GRP-X")})
	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}

func TestGroupService_Get_NotFound(t *testing.T) {
	fx := createTestGroupService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().FindByCode(ctx, "nope").Return(nil, repository.ErrGroupNotFound)

	_, err := fx.service.Get(ctx, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}

func TestGroupService_Delete(t *testing.T) {
	fx := createTestGroupService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().RemoveMember(ctx, "GRP-1", int64(4)).Return(nil)
	fx.groupRepo.EXPECT().Delete(ctx, "GRP-2").Return(repository.ErrGroupNotFound)

	require.NoError(t, fx.service.Delete(ctx, "GRP-1", ptr(int64(4))))
	assert.ErrorIs(t, fx.service.Delete(ctx, "GRP-2", nil), domainerrors.ErrGroupNotFound)
}
