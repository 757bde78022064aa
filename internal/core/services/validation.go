package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/churn/api/internal/core/domain"
	"github.com/churn/api/internal/core/ports"
)

// validateCustomer normalizes and constrains the raw ten-field payload.
// All fields are mandatory; numeric bounds are inclusive; enum values are
// trimmed and title-cased before matching. Checks are field-independent.
func validateCustomer(in ports.CustomerInput) (*domain.CustomerRecord, error) {
	age, err := requireInt(domain.ExternalFieldName("age"), in.Age, 3, 110)
	if err != nil {
		return nil, err
	}
	gender, err := requireEnum(domain.ExternalFieldName("gender"), in.Gender,
		[]string{string(domain.GenderMale), string(domain.GenderFemale)})
	if err != nil {
		return nil, err
	}
	tenure, err := requireFloat(domain.ExternalFieldName("tenure"), in.Tenure, 1, 60)
	if err != nil {
		return nil, err
	}
	usage, err := requireFloat(domain.ExternalFieldName("usage_frequency"), in.UsageFrequency, 1, 30)
	if err != nil {
		return nil, err
	}
	calls, err := requireFloat(domain.ExternalFieldName("support_calls"), in.SupportCalls, 0, 10)
	if err != nil {
		return nil, err
	}
	delay, err := requireFloat(domain.ExternalFieldName("payment_delay"), in.PaymentDelay, 0, 30)
	if err != nil {
		return nil, err
	}
	subscription, err := requireEnum(domain.ExternalFieldName("subscription_type"), in.SubscriptionType,
		[]string{string(domain.SubscriptionStandard), string(domain.SubscriptionBasic), string(domain.SubscriptionPremium)})
	if err != nil {
		return nil, err
	}
	contract, err := requireEnum(domain.ExternalFieldName("contract_length"), in.ContractLength,
		[]string{string(domain.ContractAnnual), string(domain.ContractMonthly), string(domain.ContractQuarterly)})
	if err != nil {
		return nil, err
	}
	spend, err := requireFloat(domain.ExternalFieldName("total_spend"), in.TotalSpend, 100, 1000)
	if err != nil {
		return nil, err
	}
	lastInteraction, err := requireFloat(domain.ExternalFieldName("last_interaction"), in.LastInteraction, 1, 30)
	if err != nil {
		return nil, err
	}

	return &domain.CustomerRecord{
		Age:              age,
		Gender:           domain.Gender(gender),
		Tenure:           tenure,
		UsageFrequency:   usage,
		SupportCalls:     calls,
		PaymentDelay:     delay,
		SubscriptionType: domain.SubscriptionType(subscription),
		ContractLength:   domain.ContractLength(contract),
		TotalSpend:       spend,
		LastInteraction:  lastInteraction,
	}, nil
}

func requireInt(field string, value *int, min, max int) (int, error) {
	if value == nil {
		return 0, missingField(field)
	}
	if *value < min || *value > max {
		return 0, &domain.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d, got %d", min, max, *value),
		}
	}
	return *value, nil
}

func requireFloat(field string, value *float64, min, max float64) (float64, error) {
	if value == nil {
		return 0, missingField(field)
	}
	if *value < min || *value > max {
		return 0, &domain.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v, got %v", min, max, *value),
		}
	}
	return *value, nil
}

func requireEnum(field string, value *string, allowed []string) (string, error) {
	if value == nil {
		return "", missingField(field)
	}
	cleaned := normalizeEnum(*value)
	if !slices.Contains(allowed, cleaned) {
		return "", &domain.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(allowed, ", "), *value),
		}
	}
	return cleaned, nil
}

// normalizeEnum trims whitespace and title-cases the value, so " male "
// matches "Male". All allowed values are single words.
func normalizeEnum(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func missingField(field string) error {
	return &domain.ValidationError{Field: field, Message: "field is required"}
}
