package models

type Team struct {
	ID           int    `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Headquarters string `json:"headquarters" db:"headquarters"`
}
