package models

// Facility represents a golf facility that hosts teams, leagues and matches
type Facility struct {
	ID      int     `json:"facility_id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Zip     string  `json:"zip"`
	Phone   *string `json:"phone,omitempty"`
	Website *string `json:"website,omitempty"`
}
