package models

type Hero struct {
	ID         int    `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	SecretName string `json:"secret_name" db:"secret_name"`
	Age        *int   `json:"age" db:"age"`
	TeamID     *int   `json:"team_id" db:"team_id"`
}
