package schema

// CoreSubcategoryTable represents the 'core.subcategory' table
type CoreSubcategoryTable struct {
	Table      string
	ID         string
	CategoryID string
	Name       string
	SortOrder  string
	CreatedAt  string
}

// CoreSubcategory is the schema definition for core.subcategory
var CoreSubcategory = CoreSubcategoryTable{
	Table:      "core.subcategory",
	ID:         "id",
	CategoryID: "categoryid",
	Name:       "name",
	SortOrder:  "sortorder",
	CreatedAt:  "createdat",
}
