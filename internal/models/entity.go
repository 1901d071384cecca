package models

import (
	"fmt"
	"strings"
	"time"
)

// Type tags used when an identifier has to be generated.
const (
	TagClassicBike       = "ClassicBike"
	TagElectricBike      = "ElectricBike"
	TagStation           = "Station"
	TagCasualRider       = "CasualRider"
	TagMemberRider       = "MemberRider"
	TagTrip              = "Trip"
	TagMaintenanceRecord = "MaintenanceRecord"
)

// IDSource issues identifiers for entities constructed without one.
type IDSource interface {
	Next(tag string) string
}

// entity holds the fields every registered object carries.
type entity struct {
	id        string
	createdAt time.Time
}

// newEntity resolves the identifier: an empty id is generated from ids,
// a whitespace-only id is rejected.
func newEntity(ids IDSource, tag, id string) (entity, error) {
	if id == "" {
		if ids == nil {
			return entity{}, fmt.Errorf("%w: no id supplied and no generator for %s", ErrInvalidIdentifier, tag)
		}
		id = ids.Next(tag)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entity{}, fmt.Errorf("%w: blank %s id", ErrInvalidIdentifier, strings.ToLower(tag))
	}
	return entity{id: id, createdAt: time.Now()}, nil
}

// ID returns the entity identifier.
func (e *entity) ID() string { return e.id }

// CreatedAt returns the construction time.
func (e *entity) CreatedAt() time.Time { return e.createdAt }
