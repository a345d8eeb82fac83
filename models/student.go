package models

type Student struct {
	Name string `json:"name"`
}
