package models

// Food is a row from the foods table. item_id is the natural key.
type Food struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	ItemUnit string `json:"itemUnit"`
}
