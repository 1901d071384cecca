package factory

import (
	"time"

	"github.com/ukydev/citybike/internal/models"
)

type riderRecord struct {
	ID              *string    `mapstructure:"user_id"`
	Name            string     `mapstructure:"name"`
	Email           *string    `mapstructure:"email"`
	Type            *string    `mapstructure:"user_type"`
	DayPassCount    *int       `mapstructure:"day_pass_count"`
	Tier            *string    `mapstructure:"tier"`
	MembershipStart *time.Time `mapstructure:"membership_start"`
	MembershipEnd   *time.Time `mapstructure:"membership_end"`
}

// RiderFactory creates Rider variants from records keyed by user_id, name,
// email, user_type, day_pass_count, tier, membership_start and
// membership_end.
type RiderFactory struct {
	ids models.IDSource
}

// NewRiderFactory returns a factory that generates ids from ids when a
// record has none.
func NewRiderFactory(ids models.IDSource) *RiderFactory {
	return &RiderFactory{ids: ids}
}

// CreateFromRecord builds the rider variant named by user_type
// (default "casual"). A missing or malformed email is replaced with
// "<id>@example.com".
func (f *RiderFactory) CreateFromRecord(rec Record) (models.Rider, error) {
	var in riderRecord
	if err := decode(rec, &in); err != nil {
		return nil, err
	}
	rt, err := models.ParseRiderType(stringOr(in.Type, string(DefaultRiderType)))
	if err != nil {
		return nil, err
	}

	tag := models.TagCasualRider
	if rt == models.RiderMember {
		tag = models.TagMemberRider
	}
	id, err := resolveID(f.ids, in.ID, "user_id", tag)
	if err != nil {
		return nil, err
	}
	email := RepairEmail(id, stringOr(in.Email, ""))

	switch rt {
	case models.RiderCasual:
		passes := DefaultDayPassCount
		if in.DayPassCount != nil {
			passes = *in.DayPassCount
		}
		return models.NewCasualRider(f.ids, id, in.Name, email, passes)
	case models.RiderMember:
		tier, err := models.ParseMembershipTier(stringOr(in.Tier, string(DefaultTier)))
		if err != nil {
			return nil, err
		}
		var start, end time.Time
		if in.MembershipStart != nil {
			start = *in.MembershipStart
		}
		if in.MembershipEnd != nil {
			end = *in.MembershipEnd
		}
		return models.NewMemberRider(f.ids, id, in.Name, email, start, end, tier)
	default:
		panic("factory: unhandled rider type " + string(rt))
	}
}

// RepairEmail returns email when it is well formed and "<id>@example.com"
// otherwise.
func RepairEmail(id, email string) string {
	if models.ValidEmail(email) {
		return email
	}
	return id + "@" + FallbackEmailDomain
}
