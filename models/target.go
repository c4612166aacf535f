package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Target types supported by the service. A monthly target is scoped to a
// single YYYY-MM period, a yearly target to a bare YYYY period.
const (
	TargetTypeMonthly = "monthly"
	TargetTypeYearly  = "yearly"
)

var (
	monthlyPeriodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	yearlyPeriodPattern  = regexp.MustCompile(`^\d{4}$`)
)

// Target represents a periodic distance goal owned by one user.
//
// The service keeps at most one target per (user, type, period); saving a
// target for an occupied period replaces the previous record.
type Target struct {
	// TargetID is the unique identifier of the target, generated at
	// construction. Replacing a target by period produces a new id.
	TargetID string `json:"target_id"`

	// UserID is the identifier of the owning user.
	UserID string `json:"user_id"`

	// Type is either [TargetTypeMonthly] or [TargetTypeYearly].
	Type string `json:"target_type"`

	// Period is the label scoping the target: YYYY-MM for monthly targets,
	// YYYY for yearly ones.
	Period string `json:"period"`

	// DistanceKm is the distance goal for the period, in kilometres.
	// Always > 0.
	DistanceKm float64 `json:"distance_km"`

	// CreatedAt is the timestamp of record creation.
	CreatedAt time.Time `json:"created_at"`
}

// NewTarget constructs a validated Target for the given user.
//
// The target type must be "monthly" or "yearly" and the period format must
// agree with the type (YYYY-MM with month 01-12, or bare YYYY). The distance
// must be positive. Violations are reported as errors wrapping
// [ErrValidation].
func NewTarget(userID string, targetType string, period string, distanceKm float64) (Target, error) {
	if err := validateTargetType(targetType); err != nil {
		return Target{}, err
	}
	if err := validatePeriod(targetType, period); err != nil {
		return Target{}, err
	}
	if distanceKm <= 0 {
		return Target{}, fmt.Errorf("%w: distance must be greater than zero", ErrValidation)
	}

	return Target{
		TargetID:   newID(),
		UserID:     userID,
		Type:       targetType,
		Period:     period,
		DistanceKm: distanceKm,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func validateTargetType(targetType string) error {
	switch targetType {
	case TargetTypeMonthly, TargetTypeYearly:
		return nil
	default:
		return fmt.Errorf("%w: invalid target type: must be one of [monthly yearly]", ErrValidation)
	}
}

func validatePeriod(targetType string, period string) error {
	switch targetType {
	case TargetTypeMonthly:
		if !monthlyPeriodPattern.MatchString(period) {
			return fmt.Errorf("%w: invalid monthly period format: must be YYYY-MM", ErrValidation)
		}

		month, _ := strconv.Atoi(period[len("YYYY-"):])
		if month < 1 || month > 12 {
			return fmt.Errorf("%w: invalid month: must be 01-12", ErrValidation)
		}
	case TargetTypeYearly:
		if !yearlyPeriodPattern.MatchString(period) {
			return fmt.Errorf("%w: invalid yearly period format: must be YYYY", ErrValidation)
		}
	}

	return nil
}

// PeriodDisplay returns a human-readable form of the period: the English
// month name followed by the year for monthly targets ("June 2025"), the
// bare year for yearly ones ("2025").
func (t Target) PeriodDisplay() string {
	if t.Type != TargetTypeMonthly {
		return t.Period
	}

	parts := strings.SplitN(t.Period, "-", 2)
	month, _ := strconv.Atoi(parts[1])
	return fmt.Sprintf("%s %s", time.Month(month).String(), parts[0])
}
