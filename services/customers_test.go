package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-api/db/dbtest"
)

func TestDeleteCustomer(t *testing.T) {
	tests := []struct {
		desc    string
		tag     string
		wantErr error
	}{
		{"existing row deleted", "DELETE 1", nil},
		{"absent code", "DELETE 0", ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			q := &dbtest.FakeQuerier{ExecTag: pgconn.NewCommandTag(tt.tag)}
			err := DeleteCustomer(context.Background(), q, "CU0001")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, q.Args, 1)
			assert.Equal(t, []any{"CU0001"}, q.Args[0])
		})
	}
}

func TestListCustomerNames(t *testing.T) {
	q := &dbtest.FakeQuerier{QueryRows: &dbtest.StringRows{Data: []string{"Alex", "Priya"}}}
	names, err := ListCustomerNames(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alex", "Priya"}, names)
}

func TestListStudentNames(t *testing.T) {
	q := &dbtest.FakeQuerier{QueryRows: &dbtest.StringRows{Data: []string{"Sam"}}}
	names, err := ListStudentNames(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sam"}, names)
	assert.Contains(t, q.SQL[0], "SELECT name FROM student")
}
