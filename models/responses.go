package models

import "time"

// HealthResponse is the constant payload of the unauthenticated GET / probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// AuthResponse is returned by the register and login endpoints. It carries
// the signed bearer token together with the identity it was issued for.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// RunResponse is the API shape of a persisted run: the duration and pace are
// rendered as formatted strings and the date as YYYY-MM-DD.
type RunResponse struct {
	RunID      string  `json:"run_id"`
	Date       string  `json:"date"`
	DistanceKm float64 `json:"distance_km"`
	Duration   string  `json:"duration"`
	Pace       string  `json:"pace"`
	Notes      string  `json:"notes"`
}

// ToResponse converts the run into its API shape.
func (r Run) ToResponse() RunResponse {
	return RunResponse{
		RunID:      r.RunID,
		Date:       r.Date.Format("2006-01-02"),
		DistanceKm: r.DistanceKm,
		Duration:   r.DurationFormatted(),
		Pace:       r.PaceFormatted(),
		Notes:      r.Notes,
	}
}

// TargetResponse is the API shape of a persisted target, with the derived
// human-readable period included.
type TargetResponse struct {
	TargetID      string    `json:"target_id"`
	UserID        string    `json:"user_id"`
	TargetType    string    `json:"target_type"`
	Period        string    `json:"period"`
	PeriodDisplay string    `json:"period_display"`
	DistanceKm    float64   `json:"distance_km"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts the target into its API shape.
func (t Target) ToResponse() TargetResponse {
	return TargetResponse{
		TargetID:      t.TargetID,
		UserID:        t.UserID,
		TargetType:    t.Type,
		Period:        t.Period,
		PeriodDisplay: t.PeriodDisplay(),
		DistanceKm:    t.DistanceKm,
		CreatedAt:     t.CreatedAt,
	}
}
