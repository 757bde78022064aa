package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/churn/api/internal/core/domain"
	"github.com/churn/api/internal/core/ports"
)

type PredictHandler struct {
	service ports.PredictionService
}

func NewPredictHandler(service ports.PredictionService) *PredictHandler {
	return &PredictHandler{
		service: service,
	}
}

// predictRequest uses the literal column names the model was trained on as
// wire keys, spaces included.
type predictRequest struct {
	Age              *int     `json:"Age"`
	Gender           *string  `json:"Gender"`
	Tenure           *float64 `json:"Tenure"`
	UsageFrequency   *float64 `json:"Usage Frequency"`
	SupportCalls     *float64 `json:"Support Calls"`
	PaymentDelay     *float64 `json:"Payment Delay"`
	SubscriptionType *string  `json:"Subscription Type"`
	ContractLength   *string  `json:"Contract Length"`
	TotalSpend       *float64 `json:"Total Spend"`
	LastInteraction  *float64 `json:"Last Interaction"`
}

func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value(UsernameKey).(string)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CustomerInput{
		Age:              req.Age,
		Gender:           req.Gender,
		Tenure:           req.Tenure,
		UsageFrequency:   req.UsageFrequency,
		SupportCalls:     req.SupportCalls,
		PaymentDelay:     req.PaymentDelay,
		SubscriptionType: req.SubscriptionType,
		ContractLength:   req.ContractLength,
		TotalSpend:       req.TotalSpend,
		LastInteraction:  req.LastInteraction,
	}

	result, err := h.service.Predict(r.Context(), input)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusUnprocessableEntity, validationErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("user %s requested a prediction: %s", username, result.Prediction)
	writeJSON(w, http.StatusOK, result)
}
