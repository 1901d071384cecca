package models

import (
	"fmt"
	"time"
)

// MaintenanceRecord documents a service event on a vehicle.
type MaintenanceRecord struct {
	entity
	vehicle         Vehicle
	date            time.Time
	maintenanceType MaintenanceType
	cost            float64
	description     string
}

// NewMaintenanceRecord builds a maintenance record. cost is in EUR and must
// not be negative.
func NewMaintenanceRecord(ids IDSource, id string, vehicle Vehicle, date time.Time,
	maintenanceType MaintenanceType, cost float64, description string) (*MaintenanceRecord, error) {
	if vehicle == nil {
		return nil, invalidValue("vehicle", nil, "non-nil")
	}
	if !maintenanceType.IsValid() {
		return nil, invalidValue("maintenance_type", maintenanceType, "one of repair, cleaning, inspection, replacement")
	}
	c, err := validateNonNegative(cost, "cost")
	if err != nil {
		return nil, err
	}
	e, err := newEntity(ids, TagMaintenanceRecord, id)
	if err != nil {
		return nil, err
	}
	return &MaintenanceRecord{
		entity:          e,
		vehicle:         vehicle,
		date:            date,
		maintenanceType: maintenanceType,
		cost:            c,
		description:     description,
	}, nil
}

func (m *MaintenanceRecord) Vehicle() Vehicle                 { return m.vehicle }
func (m *MaintenanceRecord) Date() time.Time                  { return m.date }
func (m *MaintenanceRecord) MaintenanceType() MaintenanceType { return m.maintenanceType }
func (m *MaintenanceRecord) Cost() float64                    { return m.cost }
func (m *MaintenanceRecord) Description() string              { return m.description }

func (m *MaintenanceRecord) String() string {
	return fmt.Sprintf("Maintenance %s - %s", m.id, m.maintenanceType)
}
