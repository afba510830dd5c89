package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	SortOrder string
	CreatedAt string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:     "core.category",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	SortOrder: "sortorder",
	CreatedAt: "createdat",
}
