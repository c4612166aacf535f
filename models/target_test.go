package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTarget_Valid(t *testing.T) {
	tests := []struct {
		name       string
		targetType string
		period     string
	}{
		{"monthly", TargetTypeMonthly, "2025-06"},
		{"monthly january", TargetTypeMonthly, "2025-01"},
		{"monthly december", TargetTypeMonthly, "2025-12"},
		{"yearly", TargetTypeYearly, "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := NewTarget("user-1", tt.targetType, tt.period, 100)
			require.NoError(t, err)

			assert.NotEmpty(t, target.TargetID)
			assert.Equal(t, "user-1", target.UserID)
			assert.Equal(t, tt.targetType, target.Type)
			assert.Equal(t, tt.period, target.Period)
			assert.False(t, target.CreatedAt.IsZero())
		})
	}
}

func TestNewTarget_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		targetType string
		period     string
		distance   float64
	}{
		{"unknown type", "weekly", "2025-06", 100},
		{"empty type", "", "2025-06", 100},
		{"month out of range", TargetTypeMonthly, "2025-13", 100},
		{"month zero", TargetTypeMonthly, "2025-00", 100},
		{"monthly with bare year", TargetTypeMonthly, "2025", 100},
		{"yearly with month", TargetTypeYearly, "2025-06", 100},
		{"yearly too short", TargetTypeYearly, "202", 100},
		{"empty period", TargetTypeMonthly, "", 100},
		{"zero distance", TargetTypeMonthly, "2025-06", 0},
		{"negative distance", TargetTypeYearly, "2025", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTarget("user-1", tt.targetType, tt.period, tt.distance)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTarget_PeriodDisplay(t *testing.T) {
	tests := []struct {
		name       string
		targetType string
		period     string
		want       string
	}{
		{"monthly june", TargetTypeMonthly, "2025-06", "June 2025"},
		{"monthly january", TargetTypeMonthly, "2024-01", "January 2024"},
		{"monthly december", TargetTypeMonthly, "2023-12", "December 2023"},
		{"yearly", TargetTypeYearly, "2025", "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := NewTarget("user-1", tt.targetType, tt.period, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.want, target.PeriodDisplay())
		})
	}
}

func TestTarget_ToResponse(t *testing.T) {
	target, err := NewTarget("user-1", TargetTypeMonthly, "2025-06", 150)
	require.NoError(t, err)

	resp := target.ToResponse()
	assert.Equal(t, target.TargetID, resp.TargetID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, TargetTypeMonthly, resp.TargetType)
	assert.Equal(t, "2025-06", resp.Period)
	assert.Equal(t, "June 2025", resp.PeriodDisplay)
	assert.Equal(t, 150.0, resp.DistanceKm)
	assert.Equal(t, target.CreatedAt, resp.CreatedAt)
}
