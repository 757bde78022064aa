package services

import (
	"context"
	"errors"
	"testing"

	"github.com/churn/api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier satisfies ports.Classifier without the real model artifact.
type stubClassifier struct {
	code    int
	err     error
	lastRow domain.FeatureRow
}

func (c *stubClassifier) Predict(row domain.FeatureRow) (int, error) {
	c.lastRow = row
	return c.code, c.err
}

func TestPredictChurn(t *testing.T) {
	stub := &stubClassifier{code: 1}
	svc := NewPredictionService(stub)

	result, err := svc.Predict(context.Background(), validCustomerInput())
	require.NoError(t, err)

	assert.Equal(t, domain.PredictionChurn, result.Prediction)
	assert.Equal(t, domain.RiskCritical, result.RiskLevel)
}

func TestPredictNoChurn(t *testing.T) {
	stub := &stubClassifier{code: 0}
	svc := NewPredictionService(stub)

	result, err := svc.Predict(context.Background(), validCustomerInput())
	require.NoError(t, err)

	assert.Equal(t, domain.PredictionNoChurn, result.Prediction)
	assert.Equal(t, domain.RiskSafe, result.RiskLevel)
}

func TestPredictRowUsesModelColumns(t *testing.T) {
	stub := &stubClassifier{code: 0}
	svc := NewPredictionService(stub)

	_, err := svc.Predict(context.Background(), validCustomerInput())
	require.NoError(t, err)

	require.Len(t, stub.lastRow, 10)
	for _, column := range domain.ModelColumns() {
		assert.Contains(t, stub.lastRow, column)
	}
	assert.Equal(t, 15.5, stub.lastRow["Usage Frequency"])
	assert.Equal(t, "Male", stub.lastRow["Gender"])
}

func TestPredictClassifierError(t *testing.T) {
	stub := &stubClassifier{err: errors.New("boom")}
	svc := NewPredictionService(stub)

	_, err := svc.Predict(context.Background(), validCustomerInput())
	require.ErrorIs(t, err, domain.ErrInference)
	assert.Contains(t, err.Error(), "boom")
}

func TestPredictUnexpectedClassCode(t *testing.T) {
	stub := &stubClassifier{code: 2}
	svc := NewPredictionService(stub)

	_, err := svc.Predict(context.Background(), validCustomerInput())
	require.ErrorIs(t, err, domain.ErrInference)
}

func TestPredictInvalidInputSkipsClassifier(t *testing.T) {
	stub := &stubClassifier{code: 1}
	svc := NewPredictionService(stub)

	input := validCustomerInput()
	input.Age = ptr(2)

	_, err := svc.Predict(context.Background(), input)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Nil(t, stub.lastRow)
}
