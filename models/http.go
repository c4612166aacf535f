package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RunRequest is the body of POST /runs.
type RunRequest struct {
	// Date is the run date in YYYY-MM-DD format.
	Date string `json:"date"`

	// DistanceKm is the distance in kilometres; must be > 0.
	DistanceKm float64 `json:"distance_km"`

	// Duration is the run duration in strict HH:MM:SS format.
	Duration string `json:"duration"`

	// Notes is optional free text about the run.
	Notes string `json:"notes"`
}

// TargetRequest is the body of POST /targets.
type TargetRequest struct {
	// TargetType is "monthly" or "yearly".
	TargetType string `json:"target_type"`

	// Period is YYYY-MM for monthly targets, YYYY for yearly ones.
	Period string `json:"period"`

	// DistanceKm is the distance goal in kilometres; must be > 0.
	DistanceKm float64 `json:"distance_km"`
}
