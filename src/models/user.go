package models

import "time"

// Preferences is the per-user settings bag stored as a single jsonb column.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	BudgetAlerts  bool   `json:"budgetAlerts"`
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: "dark", Notifications: true, BudgetAlerts: true}
}

type User struct {
	ID           int64       `json:"id"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Currency     string      `json:"currency"`
	Timezone     string      `json:"timezone"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
