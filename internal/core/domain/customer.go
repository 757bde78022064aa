package domain

// Gender is the customer's gender as the model was trained on it.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// SubscriptionType is the tier of the plan the customer subscribed to.
type SubscriptionType string

const (
	SubscriptionStandard SubscriptionType = "Standard"
	SubscriptionBasic    SubscriptionType = "Basic"
	SubscriptionPremium  SubscriptionType = "Premium"
)

// ContractLength is the duration of the customer's contract.
type ContractLength string

const (
	ContractAnnual    ContractLength = "Annual"
	ContractMonthly   ContractLength = "Monthly"
	ContractQuarterly ContractLength = "Quarterly"
)

// CustomerRecord is a fully validated customer. Every field is guaranteed
// to be within its documented bounds; consumers never re-validate.
type CustomerRecord struct {
	Age              int
	Gender           Gender
	Tenure           float64
	UsageFrequency   float64
	SupportCalls     float64
	PaymentDelay     float64
	SubscriptionType SubscriptionType
	ContractLength   ContractLength
	TotalSpend       float64
	LastInteraction  float64
}

// FeatureRow is a single tabular row keyed by the external column names the
// model expects. Values are float64 for numeric columns and string for
// categorical ones.
type FeatureRow map[string]any

// fieldAliases maps internal field identifiers to the exact column names the
// model was trained on. The wire format and the model artifact both use the
// external names, which may contain spaces.
var fieldAliases = map[string]string{
	"age":               "Age",
	"gender":            "Gender",
	"tenure":            "Tenure",
	"usage_frequency":   "Usage Frequency",
	"support_calls":     "Support Calls",
	"payment_delay":     "Payment Delay",
	"subscription_type": "Subscription Type",
	"contract_length":   "Contract Length",
	"total_spend":       "Total Spend",
	"last_interaction":  "Last Interaction",
}

var internalNames = func() map[string]string {
	m := make(map[string]string, len(fieldAliases))
	for internal, external := range fieldAliases {
		m[external] = internal
	}
	return m
}()

// ExternalFieldName returns the model column name for an internal field
// identifier, or the identifier itself when no alias is registered.
func ExternalFieldName(internal string) string {
	if external, ok := fieldAliases[internal]; ok {
		return external
	}
	return internal
}

// InternalFieldName returns the internal identifier for a model column name.
func InternalFieldName(external string) (string, bool) {
	internal, ok := internalNames[external]
	return internal, ok
}

// ModelColumns returns the external column names in the order the model was
// trained on.
func ModelColumns() []string {
	return []string{
		ExternalFieldName("age"),
		ExternalFieldName("gender"),
		ExternalFieldName("tenure"),
		ExternalFieldName("usage_frequency"),
		ExternalFieldName("support_calls"),
		ExternalFieldName("payment_delay"),
		ExternalFieldName("subscription_type"),
		ExternalFieldName("contract_length"),
		ExternalFieldName("total_spend"),
		ExternalFieldName("last_interaction"),
	}
}

// Row projects the record into the single-row tabular layout the model
// expects, keyed by external column names.
func (r *CustomerRecord) Row() FeatureRow {
	return FeatureRow{
		ExternalFieldName("age"):               float64(r.Age),
		ExternalFieldName("gender"):            string(r.Gender),
		ExternalFieldName("tenure"):            r.Tenure,
		ExternalFieldName("usage_frequency"):   r.UsageFrequency,
		ExternalFieldName("support_calls"):     r.SupportCalls,
		ExternalFieldName("payment_delay"):     r.PaymentDelay,
		ExternalFieldName("subscription_type"): string(r.SubscriptionType),
		ExternalFieldName("contract_length"):   string(r.ContractLength),
		ExternalFieldName("total_spend"):       r.TotalSpend,
		ExternalFieldName("last_interaction"):  r.LastInteraction,
	}
}

// Prediction is the human-facing label for the model's binary output.
type Prediction string

const (
	PredictionChurn   Prediction = "Churn"
	PredictionNoChurn Prediction = "No Churn"
)

// RiskLevel is the risk tier derived from the prediction.
type RiskLevel string

const (
	RiskCritical RiskLevel = "Critical"
	RiskSafe     RiskLevel = "Safe"
)

type PredictionResult struct {
	Prediction Prediction `json:"prediction"`
	RiskLevel  RiskLevel  `json:"risk_level"`
}
