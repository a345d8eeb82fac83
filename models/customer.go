package models

// Customer is a row from the customer table. cust_code is always 6 chars.
type Customer struct {
	CustCode string `json:"custCode"`
	CustName string `json:"custName"`
}
