// Package classifier trains and persists the per-category disaster
// message classifiers. The classification itself is delegated to a
// TF-IDF naive Bayes library; this package handles splitting, fan-out,
// evaluation, and the bundle format.
package classifier

import (
	"math/rand"
	"sync"

	"github.com/jbrukh/bayesian"
	"github.com/mager/broca/dataset"
	"go.uber.org/zap"
)

const (
	ClassPositive bayesian.Class = "positive"
	ClassNegative bayesian.Class = "negative"
)

// TestSplit is the held-out portion of the samples for one category.
type TestSplit struct {
	Messages []string
	Labels   []int
}

// Estimator is one trained category classifier plus its splits.
type Estimator struct {
	Category      string
	Classifier    *bayesian.Classifier
	TrainMessages []string
	Test          TestSplit
}

// Train fits one classifier per category, one goroutine each, and
// returns them keyed by category. Workers only share the result map,
// guarded by a mutex; there is no ordering between them.
func Train(log *zap.SugaredLogger, ds *dataset.Dataset, trainSize float64) map[string]*Estimator {
	log.Info("Initiating training. This might take a while.")

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		estimators = make(map[string]*Estimator, len(ds.Categories))
	)

	for idx, category := range ds.Categories {
		log.Infof("training classifier %d/%d: %s", idx+1, len(ds.Categories), category)

		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			est := trainOne(category, ds.Messages, ds.Labels[category], trainSize)
			mu.Lock()
			estimators[category] = est
			mu.Unlock()
		}(category)
	}

	wg.Wait()
	return estimators
}

func trainOne(category string, messages []string, labels []int, trainSize float64) *Estimator {
	trainIdx, testIdx := split(len(messages), trainSize)

	c := bayesian.NewClassifierTfIdf(ClassPositive, ClassNegative)

	trainMessages := make([]string, 0, len(trainIdx))
	for _, i := range trainIdx {
		tokens := Tokenize(messages[i])
		if len(tokens) == 0 {
			continue
		}
		class := ClassNegative
		if labels[i] == 1 {
			class = ClassPositive
		}
		c.Learn(tokens, class)
		trainMessages = append(trainMessages, messages[i])
	}
	c.ConvertTermsFreqToTfIdf()

	test := TestSplit{
		Messages: make([]string, 0, len(testIdx)),
		Labels:   make([]int, 0, len(testIdx)),
	}
	for _, i := range testIdx {
		test.Messages = append(test.Messages, messages[i])
		test.Labels = append(test.Labels, labels[i])
	}

	return &Estimator{
		Category:      category,
		Classifier:    c,
		TrainMessages: trainMessages,
		Test:          test,
	}
}

// split shuffles sample indices and cuts them at the train ratio.
func split(n int, trainSize float64) (train, test []int) {
	idx := rand.Perm(n)
	cut := int(float64(n) * trainSize)
	if cut > n {
		cut = n
	}
	return idx[:cut], idx[cut:]
}

// Predict reports whether the trained classifier votes the message into
// its category.
func (e *Estimator) Predict(message string) bool {
	return predict(e.Classifier, message)
}

func predict(c *bayesian.Classifier, message string) bool {
	_, inx, _ := c.LogScores(Tokenize(message))
	return c.Classes[inx] == ClassPositive
}
