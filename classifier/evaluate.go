package classifier

import (
	"go.uber.org/zap"
)

// Metrics is the binary confusion matrix for one category plus the
// derived scores.
type Metrics struct {
	TruePositive  int
	TrueNegative  int
	FalsePositive int
	FalseNegative int
}

func (m Metrics) total() int {
	return m.TruePositive + m.TrueNegative + m.FalsePositive + m.FalseNegative
}

func (m Metrics) Accuracy() float64 {
	if m.total() == 0 {
		return 0
	}
	return float64(m.TruePositive+m.TrueNegative) / float64(m.total())
}

func (m Metrics) Precision() float64 {
	if m.TruePositive+m.FalsePositive == 0 {
		return 0
	}
	return float64(m.TruePositive) / float64(m.TruePositive+m.FalsePositive)
}

func (m Metrics) Recall() float64 {
	if m.TruePositive+m.FalseNegative == 0 {
		return 0
	}
	return float64(m.TruePositive) / float64(m.TruePositive+m.FalseNegative)
}

func (m Metrics) F1() float64 {
	p, r := m.Precision(), m.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Evaluate scores an estimator against its held-out split.
func Evaluate(est *Estimator) Metrics {
	var m Metrics
	for i, message := range est.Test.Messages {
		predicted := est.Predict(message)
		actual := est.Test.Labels[i] == 1
		switch {
		case predicted && actual:
			m.TruePositive++
		case !predicted && !actual:
			m.TrueNegative++
		case predicted && !actual:
			m.FalsePositive++
		default:
			m.FalseNegative++
		}
	}
	return m
}

// Report walks the estimators and logs their performance.
func Report(log *zap.SugaredLogger, estimators map[string]*Estimator) {
	for category, est := range estimators {
		m := Evaluate(est)
		log.Infow("evaluated classifier",
			"category", category,
			"confusion_matrix", [][]int{
				{m.TrueNegative, m.FalsePositive},
				{m.FalseNegative, m.TruePositive},
			},
			"accuracy", m.Accuracy(),
			"recall", m.Recall(),
			"f1", m.F1(),
		)
	}
}
