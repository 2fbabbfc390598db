package service

import "context"

// Classifier defines the interface for zero-shot text classification. Given
// a text and a set of candidate labels it returns a score per label; scores
// are non-negative and sum to 1.
type Classifier interface {
	Classify(ctx context.Context, text string, labels []string) (map[string]float64, error)
}

// TopLabel returns the label with the highest score. Ties are broken by
// first occurrence in the submitted label order, which keeps the prediction
// deterministic even though scores arrive as a map.
func TopLabel(labels []string, scores map[string]float64) string {
	if len(labels) == 0 {
		return ""
	}
	best := labels[0]
	for _, label := range labels[1:] {
		if scores[label] > scores[best] {
			best = label
		}
	}
	return best
}
