package photo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thinh77/trinhminhson-sub000/internal/platform/database/schema"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectPhotos aggregates tag names per photo. Joins are by name, which is
// what the filter engine matches on.
var selectPhotos = fmt.Sprintf(`
	SELECT p.%[1]s::text, p.%[2]s, p.%[3]s, p.%[4]s,
	       ARRAY(
	           SELECT c.%[7]s FROM %[5]s pc
	           JOIN %[6]s c ON c.%[8]s = pc.%[9]s
	           WHERE pc.%[10]s = p.%[1]s
	           ORDER BY c.%[11]s, c.%[7]s
	       ) AS categories,
	       ARRAY(
	           SELECT DISTINCT s.%[14]s FROM %[12]s ps
	           JOIN %[13]s s ON s.%[15]s = ps.%[16]s
	           WHERE ps.%[17]s = p.%[1]s
	           ORDER BY s.%[14]s
	       ) AS subcategories
	FROM %[18]s p
	ORDER BY p.%[4]s DESC, p.%[1]s ASC`,
	schema.CorePhoto.ID, schema.CorePhoto.Title, schema.CorePhoto.ImageURL, schema.CorePhoto.CreatedAt,
	schema.CorePhotoCategory.Table, schema.CoreCategory.Table,
	schema.CoreCategory.Name, schema.CoreCategory.ID, schema.CorePhotoCategory.CategoryID,
	schema.CorePhotoCategory.PhotoID, schema.CoreCategory.SortOrder,
	schema.CorePhotoSubcategory.Table, schema.CoreSubcategory.Table,
	schema.CoreSubcategory.Name, schema.CoreSubcategory.ID, schema.CorePhotoSubcategory.SubcategoryID,
	schema.CorePhotoSubcategory.PhotoID,
	schema.CorePhoto.Table,
)

func (repository *PostgresRepository) FetchPhotos(context context.Context, limit, offset int) ([]Photo, error) {
	rows, err := repository.db.Query(context, selectPhotos+` LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "Photo", "fetch_photos")
	}
	return collectPhotos(rows)
}

func (repository *PostgresRepository) FetchAll(context context.Context) ([]Photo, error) {
	rows, err := repository.db.Query(context, selectPhotos)
	if err != nil {
		return nil, dberr.Wrap(err, "Photo", "fetch_all_photos")
	}
	return collectPhotos(rows)
}

func (repository *PostgresRepository) CountPhotos(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CorePhoto.Table)

	var total int
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "Photo", "count_photos")
	}
	return total, nil
}

func collectPhotos(rows pgx.Rows) ([]Photo, error) {
	photos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Photo, error) {
		var p Photo
		err := row.Scan(&p.ID, &p.Title, &p.ImageURL, &p.CreatedAt, &p.Categories, &p.Subcategories)
		return p, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "Photo", "scan_photo")
	}
	return photos, nil
}
