package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// StoreCommentModel mirrors the 'store_comments' table.
type StoreCommentModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	StoreID     int64     `gorm:"not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CommentText string    `gorm:"type:text;not null"`
	Rating      *int      `gorm:"check:chk_store_comments_rating,rating IS NULL OR (rating >= 1 AND rating <= 10)"`
	UserLat     *float64
	UserLng     *float64
	ImageURLs   pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time

	Store StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	User  UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreCommentModel) TableName() string {
	return "store_comments"
}

// StoreGroupModel mirrors the 'store_groups' table.
type StoreGroupModel struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	GroupCode       string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	GroupName       *string    `gorm:"type:varchar(255)"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time

	// StoreCount is computed by listing queries.
	StoreCount int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (StoreGroupModel) TableName() string {
	return "store_groups"
}

// StoreGroupMemberModel mirrors the 'store_group_members' table.
type StoreGroupMemberModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	GroupCode string `gorm:"type:varchar(100);not null;uniqueIndex:idx_group_member"`
	StoreID   int64  `gorm:"not null;uniqueIndex:idx_group_member;index"`
	IsPrimary bool   `gorm:"not null;default:false"`
	CreatedAt time.Time

	Group StoreGroupModel `gorm:"foreignKey:GroupCode;references:GroupCode;constraint:OnDelete:CASCADE"`
	Store StoreModel      `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreGroupMemberModel) TableName() string {
	return "store_group_members"
}

// StoreAssignmentModel mirrors the 'store_assignments' table.
type StoreAssignmentModel struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_unique"`
	StoreToken       string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_assignment_unique;index"`
	AssignedDate     time.Time  `gorm:"type:date;not null;uniqueIndex:idx_assignment_unique"`
	VisitDate        *time.Time `gorm:"type:date"`
	Status           string     `gorm:"type:varchar(20);not null;default:pending"`
	Notes            *string    `gorm:"type:text"`
	AssignedByUserID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreAssignmentModel) TableName() string {
	return "store_assignments"
}

// MarketVisitModel mirrors the 'market_visits' table.
type MarketVisitModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	AssignmentID   int64     `gorm:"not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreToken     string    `gorm:"type:varchar(255);not null;index"`
	VisitDate      time.Time `gorm:"type:date;not null"`
	VisitTime      *string   `gorm:"type:varchar(10)"`
	Latitude       *float64
	Longitude      *float64
	ImageURLs      pq.StringArray `gorm:"type:text[]"`
	AdditionalInfo datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time

	Assignment StoreAssignmentModel `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`

	// StoreName is computed by listing queries.
	StoreName string `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (MarketVisitModel) TableName() string {
	return "market_visits"
}

// DeactivationRequestModel mirrors the 'store_deactivation_requests' table.
type DeactivationRequestModel struct {
	ID                int64      `gorm:"primaryKey;autoIncrement"`
	StoreID           int64      `gorm:"not null;index"`
	StoreToken        string     `gorm:"type:varchar(255);not null"`
	RequestedByUserID uuid.UUID  `gorm:"type:uuid;not null"`
	Reason            *string    `gorm:"type:text"`
	Status            string     `gorm:"type:varchar(20);not null;default:pending;index"`
	ReviewedByUserID  *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt        *time.Time
	CreatedAt         time.Time

	Store StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeactivationRequestModel) TableName() string {
	return "store_deactivation_requests"
}
