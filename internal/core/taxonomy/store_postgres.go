package taxonomy

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListCategories(context context.Context) ([]Category, error) {
	cQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CoreCategory.ID, schema.CoreCategory.Name, schema.CoreCategory.Slug, schema.CoreCategory.SortOrder,
		schema.CoreCategory.Table, schema.CoreCategory.SortOrder, schema.CoreCategory.Name)
	sQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CoreSubcategory.ID, schema.CoreSubcategory.CategoryID, schema.CoreSubcategory.Name,
		schema.CoreSubcategory.Table, schema.CoreSubcategory.SortOrder, schema.CoreSubcategory.Name)

	cRows, err := repository.db.Query(context, cQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "Category", "list_categories")
	}
	defer cRows.Close()

	categories := make([]Category, 0)
	indexByID := make(map[int]int)

	for cRows.Next() {
		c := Category{Subcategories: make([]Subcategory, 0)}
		if err := cRows.Scan(&c.ID, &c.Name, &c.Slug, &c.SortOrder); err != nil {
			return nil, dberr.Wrap(err, "Category", "scan_category")
		}
		indexByID[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err := cRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Category", "list_categories")
	}
	cRows.Close()

	sRows, err := repository.db.Query(context, sQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "Subcategory", "list_subcategories")
	}
	defer sRows.Close()

	for sRows.Next() {
		s := Subcategory{}
		if err := sRows.Scan(&s.ID, &s.CategoryID, &s.Name); err != nil {
			return nil, dberr.Wrap(err, "Subcategory", "scan_subcategory")
		}

		if i, ok := indexByID[s.CategoryID]; ok {
			categories[i].Subcategories = append(categories[i].Subcategories, s)
		}
	}
	if err := sRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Subcategory", "list_subcategories")
	}

	return categories, nil
}
