package domain

// RoomType is a category of rooms (suite, double, accessible single, ...).
type RoomType struct {
	RoomTypeID            int    `json:"RoomTypeID" db:"RoomTypeID"`
	TypeName              string `json:"TypeName" db:"TypeName"`
	AccessibilityFeatures string `json:"AccessibilityFeatures" db:"AccessibilityFeatures"`
	Description           string `json:"Description" db:"Description"`
	IsActive              bool   `json:"IsActive" db:"IsActive"`
}
