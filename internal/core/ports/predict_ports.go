package ports

import (
	"context"

	"github.com/churn/api/internal/core/domain"
)

// CustomerInput carries the raw ten-field customer payload. Fields are
// pointers so a missing key is distinguishable from a zero value.
type CustomerInput struct {
	Age              *int
	Gender           *string
	Tenure           *float64
	UsageFrequency   *float64
	SupportCalls     *float64
	PaymentDelay     *float64
	SubscriptionType *string
	ContractLength   *string
	TotalSpend       *float64
	LastInteraction  *float64
}

// Classifier is the narrow capability interface over the pre-trained model.
// The row is keyed by the external column names the model was trained on;
// Predict returns the raw class code.
type Classifier interface {
	Predict(row domain.FeatureRow) (int, error)
}

type PredictionService interface {
	Predict(ctx context.Context, input CustomerInput) (*domain.PredictionResult, error)
}
