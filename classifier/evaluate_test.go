package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := Metrics{
		TruePositive:  8,
		TrueNegative:  80,
		FalsePositive: 4,
		FalseNegative: 8,
	}

	assert.InDelta(t, 0.88, m.Accuracy(), 1e-9)
	assert.InDelta(t, 8.0/12.0, m.Precision(), 1e-9)
	assert.InDelta(t, 0.5, m.Recall(), 1e-9)
	assert.InDelta(t, 2*(8.0/12.0)*0.5/((8.0/12.0)+0.5), m.F1(), 1e-9)
}

func TestMetricsZeroGuards(t *testing.T) {
	var m Metrics
	assert.Zero(t, m.Accuracy())
	assert.Zero(t, m.Precision())
	assert.Zero(t, m.Recall())
	assert.Zero(t, m.F1())
}

func TestEvaluateCountsConfusion(t *testing.T) {
	ds := fixtureDataset()
	est := trainOne("water", ds.Messages, ds.Labels["water"], 0.75)

	m := Evaluate(est)
	assert.Equal(t, len(est.Test.Messages), m.TruePositive+m.TrueNegative+m.FalsePositive+m.FalseNegative)
}
