package models

import "time"

// Team represents a team based out of a home facility
type Team struct {
	ID             int       `json:"team_id"`
	Name           string    `json:"name"`
	CreationDate   time.Time `json:"creation_date"`
	HomeFacilityID int       `json:"home_facility_id"`
	FacilityName   string    `json:"facility_name,omitempty"`
}
