package models

type AdminStats struct {
	Farmers      int `json:"farmers"`
	Distributors int `json:"distributors"`
	Consumers    int `json:"consumers"`
	Crops        int `json:"crops"`
}

// UserSummary is an account as listed by the admin endpoints.
type UserSummary struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Role    Role   `json:"role"`
	Blocked bool   `json:"blocked,omitempty"`
}
