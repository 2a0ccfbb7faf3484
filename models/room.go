package models

// Room represents a bookable room on the upstream API.
type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity"`
	Image       string `json:"image,omitempty"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	CreatedBy   string `json:"created_by,omitempty"`
	ModifiedAt  string `json:"modified_at"`
	ModifiedBy  string `json:"modified_by,omitempty"`
}
