package models

import "time"

type User struct {
	ID          int64     `db:"id"`
	ExternalID  string    `db:"external_id"`
	Provider    string    `db:"provider"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}
