package api

import (
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-api/db/dbtest"
)

func TestDeleteCustomer(t *testing.T) {
	q := &dbtest.FakeQuerier{ExecTag: pgconn.NewCommandTag("DELETE 1")}
	r := setupRouter(q)

	w := doJSON(t, r, http.MethodDelete, "/api/customers/CU0001", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "customer deleted", decodeBody(t, w)["message"])
	require.Len(t, q.Args, 1)
	assert.Equal(t, []any{"CU0001"}, q.Args[0])
}

func TestDeleteCustomerBadCode(t *testing.T) {
	// any code whose length is not exactly 6 is rejected before the store
	for _, code := range []string{"abc", "toolongcode"} {
		r := setupRouter(&noCallQuerier{t: t})
		w := doJSON(t, r, http.MethodDelete, "/api/customers/"+code, "")
		require.Equal(t, http.StatusBadRequest, w.Code, "code %q", code)
		errs, ok := decodeBody(t, w)["errors"].([]any)
		require.True(t, ok)
		assert.NotEmpty(t, errs)
	}
}

func TestDeleteCustomerNotFound(t *testing.T) {
	q := &dbtest.FakeQuerier{ExecTag: pgconn.NewCommandTag("DELETE 0")}
	r := setupRouter(q)

	w := doJSON(t, r, http.MethodDelete, "/api/customers/CU9999", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "customer not found", decodeBody(t, w)["error"])
}

func TestListCustomers(t *testing.T) {
	q := &dbtest.FakeQuerier{QueryRows: &dbtest.StringRows{Data: []string{"Alex", "Priya"}}}
	r := setupRouter(q)

	w := doJSON(t, r, http.MethodGet, "/api/customers", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Alex", "Priya"}, decodeBody(t, w)["customerList"])
}

func TestListStudents(t *testing.T) {
	q := &dbtest.FakeQuerier{QueryRows: &dbtest.StringRows{Data: []string{"Sam"}}}
	r := setupRouter(q)

	w := doJSON(t, r, http.MethodGet, "/api/students", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Sam"}, decodeBody(t, w)["studentList"])
}
