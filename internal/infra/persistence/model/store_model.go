package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// StoreModel mirrors the 'stores' table, the store directory.
type StoreModel struct {
	ID                  int64    `gorm:"primaryKey;autoIncrement"`
	PlaceToken          string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	PlaceName           *string  `gorm:"type:text"`
	PlaceAddress        *string  `gorm:"type:text"`
	PlaceCoordinatesLat *float64 `gorm:"index:idx_stores_coordinates"`
	PlaceCoordinatesLng *float64 `gorm:"index:idx_stores_coordinates"`
	CategoryDisplay     *string  `gorm:"type:varchar(255);index"`
	CategorySlug        *string  `gorm:"type:varchar(255);index"`
	CityName            *string  `gorm:"type:varchar(255);index"`
	ProvinceName        *string  `gorm:"type:varchar(255)"`
	PlacePhone          *string  `gorm:"type:varchar(100)"`
	PlaceRating         *float64
	PlaceRatingCount    *int64
	PlaceDescription    *string        `gorm:"type:text"`
	PlaceWebsite        *string        `gorm:"type:text"`
	PlaceEmail          *string        `gorm:"type:varchar(255)"`
	PlacePriceRange     *string        `gorm:"type:varchar(50)"`
	PlacePlateNumber    *string        `gorm:"type:varchar(50)"`
	PlacePostalCode     *string        `gorm:"type:varchar(20)"`
	PlaceImages         pq.StringArray `gorm:"type:text[]"`
	PlaceSeoDetails     datatypes.JSON `gorm:"type:jsonb"`
	PlaceFullData       datatypes.JSON `gorm:"type:jsonb"`
	IsActive            *bool          `gorm:"default:true"`
	HasWorkshop         bool           `gorm:"not null;default:false"`
	CreatedByUserID     *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// GroupCode is a computed column selected by search queries.
	GroupCode *string `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// MainCategoryModel mirrors the 'main_categories' table.
type MainCategoryModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Title         string `gorm:"type:varchar(255);not null"`
	Slug          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PreviewCount  int    `gorm:"not null;default:0"`
	DisplayOrder  int    `gorm:"not null;default:0"`
	IsActive      bool   `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SubCategories []SubCategoryModel `gorm:"foreignKey:MainCategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MainCategoryModel) TableName() string {
	return "main_categories"
}

// SubCategoryModel mirrors the 'sub_categories' table.
type SubCategoryModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	MainCategoryID int64   `gorm:"not null;uniqueIndex:idx_sub_category_slug"`
	Name           string  `gorm:"type:varchar(255);not null"`
	Slug           string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_sub_category_slug"`
	Icon           *string `gorm:"type:varchar(255)"`
	DisplayOrder   int     `gorm:"not null;default:0"`
	IsActive       bool    `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}
