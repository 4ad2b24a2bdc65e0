package models

import "time"

type SavingsGoal struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	Name          string    `db:"name"`
	TargetAmount  float64   `db:"target_amount"`
	CurrentAmount float64   `db:"current_amount"`
	Deadline      time.Time `db:"deadline"`
}
