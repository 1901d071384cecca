package models

import (
	"fmt"
	"strings"
)

// VehicleType is the variant tag of a Vehicle.
type VehicleType string

const (
	VehicleClassic  VehicleType = "classic"
	VehicleElectric VehicleType = "electric"
)

// VehicleStatus is the operational state of a Vehicle.
type VehicleStatus string

const (
	StatusAvailable   VehicleStatus = "available"
	StatusInUse       VehicleStatus = "in_use"
	StatusMaintenance VehicleStatus = "maintenance"
)

// RiderType is the variant tag of a Rider.
type RiderType string

const (
	RiderCasual RiderType = "casual"
	RiderMember RiderType = "member"
)

// MembershipTier is the subscription level of a MemberRider.
type MembershipTier string

const (
	TierBasic   MembershipTier = "basic"
	TierPremium MembershipTier = "premium"
)

// MaintenanceType classifies a MaintenanceRecord.
type MaintenanceType string

const (
	MaintenanceRepair      MaintenanceType = "repair"
	MaintenanceCleaning    MaintenanceType = "cleaning"
	MaintenanceInspection  MaintenanceType = "inspection"
	MaintenanceReplacement MaintenanceType = "replacement"
)

// IsValid reports whether t is a known vehicle type.
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleClassic, VehicleElectric:
		return true
	default:
		return false
	}
}

// IsValid reports whether s is a known vehicle status.
func (s VehicleStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance:
		return true
	default:
		return false
	}
}

// IsValid reports whether t is a known rider type.
func (t RiderType) IsValid() bool {
	switch t {
	case RiderCasual, RiderMember:
		return true
	default:
		return false
	}
}

// IsValid reports whether t is a known membership tier.
func (t MembershipTier) IsValid() bool {
	switch t {
	case TierBasic, TierPremium:
		return true
	default:
		return false
	}
}

// IsValid reports whether t is a known maintenance type.
func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenanceRepair, MaintenanceCleaning, MaintenanceInspection, MaintenanceReplacement:
		return true
	default:
		return false
	}
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseVehicleType resolves a case-insensitive vehicle type tag.
func ParseVehicleType(s string) (VehicleType, error) {
	t := VehicleType(normalizeTag(s))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: vehicle type %q", ErrUnknownVariant, s)
	}
	return t, nil
}

// ParseVehicleStatus resolves a case-insensitive vehicle status.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	st := VehicleStatus(normalizeTag(s))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: vehicle status %q", ErrUnknownVariant, s)
	}
	return st, nil
}

// ParseRiderType resolves a case-insensitive rider type tag.
func ParseRiderType(s string) (RiderType, error) {
	t := RiderType(normalizeTag(s))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: rider type %q", ErrUnknownVariant, s)
	}
	return t, nil
}

// ParseMembershipTier resolves a case-insensitive membership tier.
func ParseMembershipTier(s string) (MembershipTier, error) {
	t := MembershipTier(normalizeTag(s))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: membership tier %q", ErrUnknownVariant, s)
	}
	return t, nil
}

// ParseMaintenanceType resolves a case-insensitive maintenance type.
func ParseMaintenanceType(s string) (MaintenanceType, error) {
	t := MaintenanceType(normalizeTag(s))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: maintenance type %q", ErrUnknownVariant, s)
	}
	return t, nil
}
