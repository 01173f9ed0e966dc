package domain

// Amenity is a hotel amenity. Unlike the other entities, deleting an amenity
// removes the row instead of toggling IsActive.
type Amenity struct {
	AmenityID   int    `json:"AmenityID" db:"AmenityID"`
	Name        string `json:"Name" db:"Name"`
	Description string `json:"Description" db:"Description"`
	IsActive    bool   `json:"IsActive" db:"IsActive"`
}
