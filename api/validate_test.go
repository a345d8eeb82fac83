package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStructAggregatesAllViolations(t *testing.T) {
	req := createFoodRequest{
		ItemID:   "TOOLONGID",
		ItemName: strings.Repeat("x", 26),
		ItemUnit: "",
	}
	errs := checkStruct(&req)
	require.Len(t, errs, 3, "every violation must be reported at once")

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"itemId", "itemName", "itemUnit"}, fields)
}

func TestCheckStructUsesJSONFieldNames(t *testing.T) {
	errs := checkStruct(&customerKey{CustCode: "abc"})
	require.Len(t, errs, 1)
	assert.Equal(t, "custCode", errs[0].Field)
	assert.Equal(t, "must be exactly 6 characters", errs[0].Message)
}

func TestCheckStructValid(t *testing.T) {
	req := createFoodRequest{ItemID: "FD0001", ItemName: "Rice", ItemUnit: "Kg"}
	assert.Nil(t, checkStruct(&req))
}

func TestCheckStructOptionalFields(t *testing.T) {
	// nil pointers are simply absent, not violations
	assert.Nil(t, checkStruct(&updateFoodRequest{}))

	long := strings.Repeat("x", 26)
	errs := checkStruct(&updateFoodRequest{ItemName: &long})
	require.Len(t, errs, 1)
	assert.Equal(t, "itemName", errs[0].Field)
	assert.Equal(t, "must be at most 25 characters", errs[0].Message)
}
