package models

import (
	"fmt"
	"time"
)

// DefaultMembershipLength is applied when a member has no explicit end date.
const DefaultMembershipLength = 365 * 24 * time.Hour

// Rider is a system user who takes trips. The set of implementations is
// closed: *CasualRider and *MemberRider.
//
// Trip history is not stored on the rider; the fleet registry keeps it.
type Rider interface {
	ID() string
	CreatedAt() time.Time
	Name() string
	Email() string
	Type() RiderType
	String() string
	isRider()
}

type rider struct {
	entity
	name      string
	email     string
	riderType RiderType
}

func newRider(ids IDSource, tag, id, name, email string, rt RiderType) (rider, error) {
	n, err := validateName(name, "user_name")
	if err != nil {
		return rider{}, err
	}
	addr, err := validateEmail(email)
	if err != nil {
		return rider{}, err
	}
	e, err := newEntity(ids, tag, id)
	if err != nil {
		return rider{}, err
	}
	return rider{entity: e, name: n, email: addr, riderType: rt}, nil
}

func (r *rider) Name() string    { return r.name }
func (r *rider) Email() string   { return r.email }
func (r *rider) Type() RiderType { return r.riderType }
func (r *rider) isRider()        {}

// CasualRider pays per use and may hold day passes.
type CasualRider struct {
	rider
	dayPassCount int
}

// NewCasualRider builds a casual rider.
func NewCasualRider(ids IDSource, id, name, email string, dayPassCount int) (*CasualRider, error) {
	passes, err := validateNonNegativeInt(dayPassCount, "day_pass_count")
	if err != nil {
		return nil, err
	}
	base, err := newRider(ids, TagCasualRider, id, name, email, RiderCasual)
	if err != nil {
		return nil, err
	}
	return &CasualRider{rider: base, dayPassCount: passes}, nil
}

// DayPassCount returns the number of day passes held.
func (r *CasualRider) DayPassCount() int { return r.dayPassCount }

// SetDayPassCount replaces the day pass count; negative counts are rejected.
func (r *CasualRider) SetDayPassCount(n int) error {
	passes, err := validateNonNegativeInt(n, "day_pass_count")
	if err != nil {
		return err
	}
	r.dayPassCount = passes
	return nil
}

func (r *CasualRider) String() string {
	return fmt.Sprintf("CasualRider %s (%s)", r.id, r.name)
}

// MemberRider holds a subscription valid between start and end.
type MemberRider struct {
	rider
	membershipStart time.Time
	membershipEnd   time.Time
	tier            MembershipTier
}

// NewMemberRider builds a member. A zero start defaults to now and a zero end
// to start plus DefaultMembershipLength; end must be after start.
func NewMemberRider(ids IDSource, id, name, email string, start, end time.Time, tier MembershipTier) (*MemberRider, error) {
	if start.IsZero() {
		start = time.Now()
	}
	if end.IsZero() {
		end = start.Add(DefaultMembershipLength)
	}
	if err := validateTimeOrder(start, end); err != nil {
		return nil, fmt.Errorf("membership: %w", err)
	}
	if !tier.IsValid() {
		return nil, invalidValue("tier", tier, "one of basic, premium")
	}
	base, err := newRider(ids, TagMemberRider, id, name, email, RiderMember)
	if err != nil {
		return nil, err
	}
	return &MemberRider{rider: base, membershipStart: start, membershipEnd: end, tier: tier}, nil
}

func (r *MemberRider) MembershipStart() time.Time { return r.membershipStart }
func (r *MemberRider) MembershipEnd() time.Time   { return r.membershipEnd }
func (r *MemberRider) Tier() MembershipTier       { return r.tier }

// SetTier changes the membership tier.
func (r *MemberRider) SetTier(tier MembershipTier) error {
	if !tier.IsValid() {
		return invalidValue("tier", tier, "one of basic, premium")
	}
	r.tier = tier
	return nil
}

// IsActive reports whether the membership covers the current time.
func (r *MemberRider) IsActive() bool {
	return r.IsActiveAt(time.Now())
}

// IsActiveAt reports whether t lies within [start, end].
func (r *MemberRider) IsActiveAt(t time.Time) bool {
	return !t.Before(r.membershipStart) && !t.After(r.membershipEnd)
}

func (r *MemberRider) String() string {
	return fmt.Sprintf("MemberRider %s (%s) - %s", r.id, r.name, r.tier)
}
