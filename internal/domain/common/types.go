package common

// Location is the shared pickup/site location structure embedded by tasks,
// events and waste reports. Coordinates are optional; when absent both
// values are zero and the address alone identifies the site.
type Location struct {
	Address   string  `json:"address" gorm:"column:address"`
	Latitude  float64 `json:"latitude,omitempty" gorm:"column:latitude"`
	Longitude float64 `json:"longitude,omitempty" gorm:"column:longitude"`
}
