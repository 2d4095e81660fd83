// Package migration holds the ordered schema migrations applied through gormigrate.
package migration

import (
	"log/slog"

	"storeradar/internal/infra/persistence/model"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrations returns the ordered migration list.
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20250101_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.UserModel{}, &model.RefreshTokenModel{}, &model.UserDeviceModel{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("user_devices", "refresh_tokens", "users")
			},
		},
		{
			ID: "20250101_create_stores",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.StoreModel{}, &model.MainCategoryModel{}, &model.SubCategoryModel{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("sub_categories", "main_categories", "stores")
			},
		},
		{
			ID: "20250102_create_store_activity",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.StoreCommentModel{},
					&model.StoreGroupModel{},
					&model.StoreGroupMemberModel{},
					&model.StoreAssignmentModel{},
					&model.MarketVisitModel{},
					&model.DeactivationRequestModel{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"store_deactivation_requests",
					"market_visits",
					"store_assignments",
					"store_group_members",
					"store_groups",
					"store_comments",
				)
			},
		},
		{
			ID: "20250103_store_search_indexes",
			Migrate: func(tx *gorm.DB) error {
				stmts := []string{
					"CREATE INDEX IF NOT EXISTS idx_stores_active_coordinates ON stores (place_coordinates_lat, place_coordinates_lng) WHERE COALESCE(is_active, TRUE)",
					"CREATE INDEX IF NOT EXISTS idx_assignments_user_date ON store_assignments (user_id, assigned_date DESC)",
					"CREATE UNIQUE INDEX IF NOT EXISTS idx_deactivation_one_pending ON store_deactivation_requests (store_id) WHERE status = 'pending'",
				}
				for _, stmt := range stmts {
					if err := tx.Exec(stmt).Error; err != nil {
						return errors.Wrap(err, "create search index")
					}
				}

				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec("DROP INDEX IF EXISTS idx_stores_active_coordinates, idx_assignments_user_date, idx_deactivation_one_pending").Error
			},
		},
	}
}

// Migrate applies every pending migration.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	if err := m.Migrate(); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	logger.Info("Database migrations applied", slog.Int("count", len(Migrations())))

	return nil
}

// RollbackLast reverts the most recently applied migration.
func RollbackLast(db *gorm.DB, logger *slog.Logger) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	if err := m.RollbackLast(); err != nil {
		return errors.Wrap(err, "rollback last migration")
	}

	logger.Info("Rolled back last migration")

	return nil
}
