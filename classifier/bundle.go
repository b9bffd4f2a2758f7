package classifier

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jbrukh/bayesian"
	"github.com/vmihailenco/msgpack/v5"
)

// messageSampleSize caps how many training messages travel with the
// bundle; they are only used for display.
const messageSampleSize = 50

// Bundle is the persisted classifier artifact: one serialized classifier
// per learned category plus a sample of training messages.
type Bundle struct {
	Categories  []string          `msgpack:"categories"`
	Messages    []string          `msgpack:"messages"`
	Classifiers map[string][]byte `msgpack:"classifiers"`
}

// NewBundle packs trained estimators into their exportable form.
func NewBundle(estimators map[string]*Estimator, categories []string) (*Bundle, error) {
	b := &Bundle{
		Categories:  categories,
		Classifiers: make(map[string][]byte, len(estimators)),
	}

	for _, category := range categories {
		est, ok := estimators[category]
		if !ok {
			return nil, fmt.Errorf("no estimator for category %q", category)
		}

		var buf bytes.Buffer
		if err := est.Classifier.WriteTo(&buf); err != nil {
			return nil, fmt.Errorf("serialize classifier %q: %w", category, err)
		}
		b.Classifiers[category] = buf.Bytes()

		if len(b.Messages) < messageSampleSize {
			for _, msg := range est.TrainMessages {
				if len(b.Messages) == messageSampleSize {
					break
				}
				b.Messages = append(b.Messages, msg)
			}
		}
	}

	return b, nil
}

// Save writes the bundle to disk, creating parent directories as needed.
func (b *Bundle) Save(path string) error {
	raw, err := msgpack.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// LoadBundle reads a bundle written by Save.
func LoadBundle(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Bundle
	if err := msgpack.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	for _, category := range b.Categories {
		if _, ok := b.Classifiers[category]; !ok {
			return nil, fmt.Errorf("bundle has no classifier for category %q", category)
		}
	}
	if len(b.Classifiers) != len(b.Categories) {
		return nil, fmt.Errorf("bundle has stray classifiers: %d categories, %d classifiers",
			len(b.Categories), len(b.Classifiers))
	}
	return &b, nil
}

// Decode materializes every stored classifier.
func (b *Bundle) Decode() (map[string]*bayesian.Classifier, error) {
	classifiers := make(map[string]*bayesian.Classifier, len(b.Classifiers))
	for category, blob := range b.Classifiers {
		c, err := bayesian.NewClassifierFromReader(bytes.NewReader(blob))
		if err != nil {
			return nil, fmt.Errorf("decode classifier %q: %w", category, err)
		}
		classifiers[category] = c
	}
	return classifiers, nil
}

// Classify scores a message against every category classifier and
// returns the categories that vote positive, in bundle category order.
func Classify(classifiers map[string]*bayesian.Classifier, categories []string, message string) []string {
	matched := make([]string, 0, len(categories))
	for _, category := range categories {
		c, ok := classifiers[category]
		if !ok {
			continue
		}
		if predict(c, message) {
			matched = append(matched, category)
		}
	}
	return matched
}
