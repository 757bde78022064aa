package services

import (
	"context"
	"fmt"

	"github.com/churn/api/internal/core/domain"
	"github.com/churn/api/internal/core/ports"
)

type predictionService struct {
	classifier ports.Classifier
}

func NewPredictionService(classifier ports.Classifier) ports.PredictionService {
	return &predictionService{
		classifier: classifier,
	}
}

// Predict validates the raw input, projects it into the column layout the
// model was trained on and maps the binary output to a label and risk tier.
// Inference is deterministic and side-effect-free, so failures are never
// retried; they surface as domain.ErrInference with the underlying message.
func (s *predictionService) Predict(ctx context.Context, input ports.CustomerInput) (*domain.PredictionResult, error) {
	record, err := validateCustomer(input)
	if err != nil {
		return nil, err
	}

	code, err := s.classifier.Predict(record.Row())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}

	switch code {
	case 1:
		return &domain.PredictionResult{
			Prediction: domain.PredictionChurn,
			RiskLevel:  domain.RiskCritical,
		}, nil
	case 0:
		return &domain.PredictionResult{
			Prediction: domain.PredictionNoChurn,
			RiskLevel:  domain.RiskSafe,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected class code %d", domain.ErrInference, code)
	}
}
