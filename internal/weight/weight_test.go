package weight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jewelry-production-service/internal/weight"
)

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.001, weight.Round3(0.0005))
	assert.Equal(t, 0.0, weight.Round3(0.0004))
	assert.Equal(t, 10.0, weight.Round3(10.0))
	assert.Equal(t, 2.346, weight.Round3(2.3455))
	assert.Equal(t, 1.005, weight.Round3(1.0049999))
}

func TestLoss_ScenarioCasting(t *testing.T) {
	loss := weight.Loss(10.000, 9.500)
	assert.Equal(t, 0.5, loss)
	assert.Equal(t, 5.0, weight.LossPercentage(loss, 10.000))
}

func TestLossPercentage_ZeroBase(t *testing.T) {
	assert.Equal(t, 0.0, weight.LossPercentage(1, 0))
	assert.Equal(t, 0.0, weight.LossPercentage(1, -3))
}

func TestLoss_Bounds(t *testing.T) {
	issued := []float64{0.001, 0.5, 1, 3.333, 10, 57.125, 999.999}
	fractions := []float64{0.0001, 0.1, 0.333, 0.5, 0.97, 1}

	for _, is := range issued {
		for _, f := range fractions {
			returned := weight.Round3(is * f)
			if returned <= 0 || returned > is {
				continue
			}
			loss := weight.Loss(is, returned)
			pct := weight.LossPercentage(loss, is)

			assert.GreaterOrEqual(t, loss, 0.0, "issued=%v returned=%v", is, returned)
			assert.GreaterOrEqual(t, pct, 0.0, "issued=%v returned=%v", is, returned)
			assert.LessOrEqual(t, pct, 100.0, "issued=%v returned=%v", is, returned)
		}
	}
}

func TestSum_NoDrift(t *testing.T) {
	assert.Equal(t, 0.8, weight.Sum(0.5, 0.3))
	assert.Equal(t, 8.0, weight.Sum(5.0, 3.0))

	var acc weight.Accumulator
	for i := 0; i < 10; i++ {
		acc.Add(0.1)
	}
	assert.Equal(t, 1.0, acc.Value())
	assert.Equal(t, 10.0, weight.LossPercentage(weight.Sum(0.5, 0.3), weight.Sum(5.0, 3.0)))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.33, weight.Round2(3.3333))
	assert.Equal(t, 6.67, weight.Round2(6.6666))
}
