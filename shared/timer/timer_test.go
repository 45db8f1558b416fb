package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsInactive(t *testing.T) {
	var tm Timer
	assert.False(t, tm.Active())
	assert.False(t, tm.Tick(1))
	assert.Zero(t, tm.Remaining())
}

func TestTickExpiresExactlyOnce(t *testing.T) {
	var tm Timer
	tm.Start(0.5)
	assert.True(t, tm.Active())

	expiries := 0
	for i := 0; i < 10; i++ {
		if tm.Tick(0.1) {
			expiries++
		}
	}
	assert.Equal(t, 1, expiries)
	assert.False(t, tm.Active())
	assert.Zero(t, tm.Remaining())
}

func TestStartRestartsCountdown(t *testing.T) {
	var tm Timer
	tm.Start(1)
	tm.Tick(0.75)
	tm.Start(1)
	assert.InDelta(t, 1.0, tm.Remaining(), 1e-9)
	assert.InDelta(t, 1.0, tm.Duration(), 1e-9)
}

func TestStartNonPositive(t *testing.T) {
	for _, d := range []float64{0, -1} {
		var tm Timer
		tm.Start(d)
		assert.False(t, tm.Active())
		assert.False(t, tm.Tick(0.1))
	}
}

func TestStopDoesNotReportExpiry(t *testing.T) {
	var tm Timer
	tm.Start(1)
	tm.Stop()
	assert.False(t, tm.Active())
	assert.False(t, tm.Tick(0.1))
}

func TestLargeStepExpires(t *testing.T) {
	var tm Timer
	tm.Start(0.2)
	assert.True(t, tm.Tick(5))
	assert.Zero(t, tm.Remaining())
}
