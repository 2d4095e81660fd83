package entity

// MainCategory is a top-level store category.
type MainCategory struct {
	ID            int64
	Title         string
	Slug          string
	PreviewCount  int
	DisplayOrder  int
	IsActive      bool
	SubCategories []*SubCategory
}

// SubCategory belongs to one main category; its slug is unique within it.
type SubCategory struct {
	ID             int64
	MainCategoryID int64
	Name           string
	Slug           string
	Icon           *string
	DisplayOrder   int
	IsActive       bool
}
