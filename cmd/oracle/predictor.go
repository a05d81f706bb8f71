package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// predictor queries an external prediction service for a verdict on a
// contributor's latest model. The service answers with a class label;
// label 1 means the model misbehaved, anything else counts as correct.
type predictor struct {
	endpoint string
	fallback string

	client *http.Client
}

type predictionResponse struct {
	Prediction int `json:"prediction"`
}

func newPredictor(endpoint, fallback string) *predictor {
	return &predictor{
		endpoint: endpoint,
		fallback: fallback,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// verdict returns true if the prediction service considers the subject's
// model correct. An unreachable or malformed service is resolved through
// the configured fallback policy.
func (p *predictor) verdict(ctx context.Context, subject util.Uint160) (bool, error) {
	isCorrect, err := p.query(ctx, subject)
	if err == nil {
		return isCorrect, nil
	}

	switch p.fallback {
	case "correct":
		log.Printf("Predictor unavailable, assuming correct: %v\n", err)
		return true, nil
	case "incorrect":
		log.Printf("Predictor unavailable, assuming incorrect: %v\n", err)
		return false, nil
	default:
		return false, err
	}
}

func (p *predictor) query(ctx context.Context, subject util.Uint160) (bool, error) {
	u := fmt.Sprintf("%s?account=%s", p.endpoint, address.Uint160ToString(subject))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("construct request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("query prediction service: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("prediction service responded with status %s", resp.Status)
	}

	var res predictionResponse

	err = json.NewDecoder(resp.Body).Decode(&res)
	if err != nil {
		return false, fmt.Errorf("decode prediction service response: %w", err)
	}

	return res.Prediction != 1, nil
}
