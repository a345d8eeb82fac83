package services

import (
	"context"

	"food-api/db"
)

func ListCustomerNames(ctx context.Context, q db.Querier) ([]string, error) {
	rows, err := q.Query(ctx, `SELECT cust_name FROM customer ORDER BY cust_code`)
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

// DeleteCustomer removes the customer by code. ErrNotFound if absent.
func DeleteCustomer(ctx context.Context, q db.Querier, custCode string) error {
	tag, err := q.Exec(ctx, `DELETE FROM customer WHERE cust_code = $1`, custCode)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
