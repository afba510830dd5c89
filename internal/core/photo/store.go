package photo

import "context"

// Repository is the photo collaborator. Every method returns photos newest
// first, with a stable tie-break so pages never overlap.
type Repository interface {
	FetchPhotos(context context.Context, limit, offset int) ([]Photo, error)
	FetchAll(context context.Context) ([]Photo, error)
	CountPhotos(context context.Context) (int, error)
}
