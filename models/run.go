// Package models defines the domain entities of the running-log service
// (Run, Target, User) together with the request/response shapes of the REST
// API and the JWT session token wrapper.
//
// Model constructors validate their input and return errors wrapping
// [ErrValidation]; a successfully constructed value is always internally
// consistent.
package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// durationPattern matches a strict HH:MM:SS duration: exactly two digits per
// field. Hours are unbounded within the two-digit range; minute and second
// ranges are checked separately.
var durationPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)

// Run represents a single logged run owned by one user.
//
// A Run is created once via [NewRun] and is immutable through the public API;
// the persistence layer may still replace or remove records by key.
type Run struct {
	// RunID is the unique identifier of the run, generated at construction.
	RunID string `json:"run_id"`

	// UserID is the identifier of the owning user. All runs of a user share
	// the same partition in the document store.
	UserID string `json:"-"`

	// Date is the calendar date of the run. Only the date part is
	// meaningful; the time component is always midnight UTC.
	Date time.Time `json:"date"`

	// DistanceKm is the distance covered, in kilometres. Always > 0.
	DistanceKm float64 `json:"distance_km"`

	// DurationSeconds is the total run duration in seconds, parsed from the
	// HH:MM:SS string supplied at construction.
	DurationSeconds int `json:"-"`

	// Notes is optional free text attached by the user.
	Notes string `json:"notes"`

	// CreatedAt is the timestamp of record creation.
	CreatedAt time.Time `json:"created_at"`
}

// NewRun constructs a validated Run for the given user.
//
// The duration must be a strict HH:MM:SS string (two digits per field,
// minutes and seconds below 60) and the distance must be positive; any
// violation is reported as an error wrapping [ErrValidation]. The run id and
// creation timestamp are generated here.
func NewRun(userID string, date time.Time, distanceKm float64, duration string, notes string) (Run, error) {
	if distanceKm <= 0 {
		return Run{}, fmt.Errorf("%w: distance must be greater than zero", ErrValidation)
	}

	seconds, err := parseDuration(duration)
	if err != nil {
		return Run{}, err
	}

	return Run{
		RunID:           newID(),
		UserID:          userID,
		Date:            date,
		DistanceKm:      distanceKm,
		DurationSeconds: seconds,
		Notes:           notes,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// parseDuration converts a strict HH:MM:SS string into total seconds.
func parseDuration(duration string) (int, error) {
	if duration == "" {
		return 0, fmt.Errorf("%w: invalid duration format: empty string", ErrValidation)
	}

	match := durationPattern.FindStringSubmatch(duration)
	if match == nil {
		return 0, fmt.Errorf("%w: invalid duration format: must be HH:MM:SS", ErrValidation)
	}

	// The pattern guarantees two-digit numeric fields, so Atoi cannot fail.
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])

	if minutes >= 60 {
		return 0, fmt.Errorf("%w: invalid duration format: minutes must be < 60", ErrValidation)
	}
	if seconds >= 60 {
		return 0, fmt.Errorf("%w: invalid duration format: seconds must be < 60", ErrValidation)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// DurationFormatted reconstructs the zero-padded HH:MM:SS string from the
// stored total seconds. For every valid input to [NewRun] the result is
// byte-identical to the original duration string.
func (r Run) DurationFormatted() string {
	hours := r.DurationSeconds / 3600
	minutes := (r.DurationSeconds % 3600) / 60
	seconds := r.DurationSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// PaceSeconds returns the pace in whole seconds per kilometre
// (duration / distance). Returns 0 when the distance is zero; a zero
// distance never passes [NewRun], so this only matters for values
// reconstructed by hand.
func (r Run) PaceSeconds() int {
	if r.DistanceKm == 0 {
		return 0
	}
	return int(float64(r.DurationSeconds) / r.DistanceKm)
}

// PaceFormatted returns the pace as a zero-padded MM:SS string per kilometre.
func (r Run) PaceFormatted() string {
	pace := r.PaceSeconds()
	return fmt.Sprintf("%02d:%02d", pace/60, pace%60)
}
