package taxonomy

import "context"

// Repository is the catalog collaborator.
type Repository interface {
	// ListCategories returns every category with its subcategories, both
	// in display order.
	ListCategories(context context.Context) ([]Category, error)
}
