package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/service"
)

// MLClassifier adapts MLClient to the Classifier interface
type MLClassifier struct {
	client *MLClient
}

// NewMLClassifier creates a new MLClassifier
func NewMLClassifier(client *MLClient) service.Classifier {
	return &MLClassifier{client: client}
}

// Classify classifies a single text against the candidate labels and returns
// the score per label
func (c *MLClassifier) Classify(ctx context.Context, text string, labels []string) (map[string]float64, error) {
	resp, err := c.client.Classify(ctx, text, labels, uuid.New().String())
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(resp.Labels))
	for i, label := range resp.Labels {
		scores[label] = resp.Scores[i]
	}
	return scores, nil
}
