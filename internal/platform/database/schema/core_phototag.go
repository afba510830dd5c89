package schema

// CorePhotoCategoryTable represents the 'core.photocategory' join table
type CorePhotoCategoryTable struct {
	Table      string
	PhotoID    string
	CategoryID string
}

// CorePhotoCategory is the schema definition for core.photocategory
var CorePhotoCategory = CorePhotoCategoryTable{
	Table:      "core.photocategory",
	PhotoID:    "photoid",
	CategoryID: "categoryid",
}

// CorePhotoSubcategoryTable represents the 'core.photosubcategory' join table
type CorePhotoSubcategoryTable struct {
	Table         string
	PhotoID       string
	SubcategoryID string
}

// CorePhotoSubcategory is the schema definition for core.photosubcategory
var CorePhotoSubcategory = CorePhotoSubcategoryTable{
	Table:         "core.photosubcategory",
	PhotoID:       "photoid",
	SubcategoryID: "subcategoryid",
}
