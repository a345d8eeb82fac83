package services

import (
	"context"
	"fmt"
	"strings"

	"food-api/db"
	"food-api/models"
)

func CreateFood(ctx context.Context, q db.Querier, f models.Food) error {
	_, err := q.Exec(ctx, `
		INSERT INTO foods (item_id, item_name, item_unit)
		VALUES ($1, $2, $3)`,
		f.ItemID, f.ItemName, f.ItemUnit,
	)
	return err
}

// UpdateFood builds an UPDATE containing only the supplied fields.
// ErrNoFields if both are nil, ErrNotFound if the id matched no row.
func UpdateFood(ctx context.Context, q db.Querier, itemID string, name, unit *string) error {
	set := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if name != nil {
		args = append(args, *name)
		set = append(set, fmt.Sprintf("item_name = $%d", len(args)))
	}
	if unit != nil {
		args = append(args, *unit)
		set = append(set, fmt.Sprintf("item_unit = $%d", len(args)))
	}
	if len(set) == 0 {
		return ErrNoFields
	}
	args = append(args, itemID)

	tag, err := q.Exec(ctx,
		fmt.Sprintf(`UPDATE foods SET %s WHERE item_id = $%d`, strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertFood inserts the food or updates the row sharing its item_id, in one
// statement. xmax = 0 only holds for freshly inserted rows, which is how
// created-vs-updated is reported back.
func UpsertFood(ctx context.Context, q db.Querier, f models.Food) (created bool, err error) {
	err = q.QueryRow(ctx, `
		INSERT INTO foods (item_id, item_name, item_unit)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id) DO UPDATE SET
			item_name = EXCLUDED.item_name,
			item_unit = EXCLUDED.item_unit
		RETURNING (xmax = 0)`,
		f.ItemID, f.ItemName, f.ItemUnit,
	).Scan(&created)
	return created, err
}

func ListFoodNames(ctx context.Context, q db.Querier) ([]string, error) {
	rows, err := q.Query(ctx, `SELECT item_name FROM foods ORDER BY item_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
