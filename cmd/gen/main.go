// Command gen generates type-safe gorm query helpers for the persistence models.
package main

import (
	"flag"

	"storeradar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for the generated query package")
	flag.Parse()

	models := []any{
		model.UserModel{},
		model.RefreshTokenModel{},
		model.UserDeviceModel{},
		model.StoreModel{},
		model.MainCategoryModel{},
		model.SubCategoryModel{},
		model.StoreCommentModel{},
		model.StoreGroupModel{},
		model.StoreGroupMemberModel{},
		model.StoreAssignmentModel{},
		model.MarketVisitModel{},
		model.DeactivationRequestModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
