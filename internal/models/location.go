package models

import "fmt"

// Location represents a geographical location with latitude and longitude coordinates.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lon float64 `bson:"lon" json:"lon"`
}

func (l Location) String() string {
	return fmt.Sprintf("(%.5f, %.5f)", l.Lat, l.Lon)
}
