package postgres

import (
	"context"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const groupStoreCountColumn = `(SELECT COUNT(*) FROM store_group_members m
	WHERE m.group_code = store_groups.group_code) AS store_count`

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// Create persists a new group.
func (repo *groupRepository) Create(ctx context.Context, group *entity.StoreGroup) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Omit("StoreCount").Create(groupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("group code already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt

	return nil
}

// FindByCode retrieves a group by its code.
func (repo *groupRepository) FindByCode(ctx context.Context, code string) (*entity.StoreGroup, error) {
	var groupM model.StoreGroupModel

	if err := repo.db.WithContext(ctx).
		Select("store_groups.*, "+groupStoreCountColumn).
		Where("group_code = ?", code).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find group")
	}

	return toGroupDomain(&groupM), nil
}

// List returns all groups with their member counts, newest first.
func (repo *groupRepository) List(ctx context.Context) ([]*entity.StoreGroup, error) {
	var groupModels []*model.StoreGroupModel

	if err := repo.db.WithContext(ctx).
		Select("store_groups.*, " + groupStoreCountColumn).
		Order("created_at DESC").
		Find(&groupModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list groups")
	}

	return toGroupDomains(groupModels), nil
}

// AddMember inserts a membership. It reports false when the pair already exists.
func (repo *groupRepository) AddMember(ctx context.Context, member *entity.GroupMember) (bool, error) {
	memberM := &model.StoreGroupMemberModel{
		GroupCode: member.GroupCode,
		StoreID:   member.StoreID,
		IsPrimary: member.IsPrimary,
	}

	result := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(memberM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrGroupNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add group member")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt

	return true, nil
}

// ListMembers returns the memberships of a group with their stores, primary first.
func (repo *groupRepository) ListMembers(ctx context.Context, code string) ([]*entity.GroupMember, error) {
	var memberModels []*model.StoreGroupMemberModel

	if err := repo.db.WithContext(ctx).
		Preload("Store").
		Where("group_code = ?", code).
		Order("is_primary DESC, created_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list group members")
	}

	members := make([]*entity.GroupMember, 0, len(memberModels))
	for _, memberM := range memberModels {
		member := &entity.GroupMember{
			ID:        memberM.ID,
			GroupCode: memberM.GroupCode,
			StoreID:   memberM.StoreID,
			IsPrimary: memberM.IsPrimary,
			CreatedAt: memberM.CreatedAt,
		}
		if memberM.Store.ID != 0 {
			member.Store = toStoreDomain(&memberM.Store)
		}
		members = append(members, member)
	}

	return members, nil
}

// ListByStore returns the groups a store belongs to.
func (repo *groupRepository) ListByStore(ctx context.Context, storeID int64) ([]*entity.StoreGroup, error) {
	var groupModels []*model.StoreGroupModel

	if err := repo.db.WithContext(ctx).
		Select("store_groups.*, "+groupStoreCountColumn).
		Joins("JOIN store_group_members gm ON gm.group_code = store_groups.group_code").
		Where("gm.store_id = ?", storeID).
		Order("gm.is_primary DESC, gm.created_at ASC").
		Find(&groupModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list store groups")
	}

	return toGroupDomains(groupModels), nil
}

// RemoveMember deletes one membership.
func (repo *groupRepository) RemoveMember(ctx context.Context, code string, storeID int64) error {
	result := repo.db.WithContext(ctx).
		Where("group_code = ? AND store_id = ?", code, storeID).
		Delete(&model.StoreGroupMemberModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove group member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// Delete removes a group and its memberships.
func (repo *groupRepository) Delete(ctx context.Context, code string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_code = ?", code).Delete(&model.StoreGroupMemberModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete group members")
		}

		result := tx.Where("group_code = ?", code).Delete(&model.StoreGroupModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete group")
		}
		if result.RowsAffected == 0 {
			return repository.ErrGroupNotFound
		}

		return nil
	})
}

// --- Mapper Functions ---

func toGroupDomains(models []*model.StoreGroupModel) []*entity.StoreGroup {
	groups := make([]*entity.StoreGroup, 0, len(models))
	for _, groupM := range models {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups
}

func toGroupDomain(data *model.StoreGroupModel) *entity.StoreGroup {
	return &entity.StoreGroup{
		ID:         data.ID,
		Code:       data.GroupCode,
		Name:       data.GroupName,
		CreatedBy:  data.CreatedByUserID,
		CreatedAt:  data.CreatedAt,
		StoreCount: data.StoreCount,
	}
}

func fromGroupDomain(data *entity.StoreGroup) *model.StoreGroupModel {
	return &model.StoreGroupModel{
		ID:              data.ID,
		GroupCode:       data.Code,
		GroupName:       data.Name,
		CreatedByUserID: data.CreatedBy,
		CreatedAt:       data.CreatedAt,
	}
}
