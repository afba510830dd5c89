package schema

// CorePhotoTable represents the 'core.photo' table
type CorePhotoTable struct {
	Table     string
	ID        string
	Title     string
	ImageURL  string
	CreatedAt string
}

// CorePhoto is the schema definition for core.photo
var CorePhoto = CorePhotoTable{
	Table:     "core.photo",
	ID:        "id",
	Title:     "title",
	ImageURL:  "imageurl",
	CreatedAt: "createdat",
}

func (t CorePhotoTable) Columns() []string {
	return []string{t.ID, t.Title, t.ImageURL, t.CreatedAt}
}
