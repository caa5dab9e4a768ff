package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.App.Port)
	require.True(t, cfg.App.IsDev())
	require.Equal(t, 12, cfg.Pricing.ScheduleHorizonMonths)
	require.True(t, cfg.Pricing.ShippingFee().Equal(decimal.RequireFromString("12.90")))
}

func TestLoadRejectsNegativeShippingFee(t *testing.T) {
	t.Setenv("TERRAVIK_SHIPPING_FEE_CENTS", "-1")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsZeroHorizon(t *testing.T) {
	t.Setenv("TERRAVIK_SCHEDULE_HORIZON_MONTHS", "0")
	_, err := Load()
	require.Error(t, err)
}
