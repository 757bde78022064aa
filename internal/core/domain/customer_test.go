package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldAliasesAreBidirectional(t *testing.T) {
	for internal, external := range fieldAliases {
		assert.Equal(t, external, ExternalFieldName(internal))

		roundTrip, ok := InternalFieldName(external)
		require.True(t, ok)
		assert.Equal(t, internal, roundTrip)
	}
}

func TestExternalFieldNameUnknownIdentifier(t *testing.T) {
	assert.Equal(t, "unknown", ExternalFieldName("unknown"))

	_, ok := InternalFieldName("Unknown Column")
	assert.False(t, ok)
}

func TestRowMatchesModelColumns(t *testing.T) {
	record := &CustomerRecord{
		Age:              20,
		Gender:           GenderMale,
		Tenure:           30.5,
		UsageFrequency:   15.5,
		SupportCalls:     5,
		PaymentDelay:     15,
		SubscriptionType: SubscriptionPremium,
		ContractLength:   ContractMonthly,
		TotalSpend:       550,
		LastInteraction:  15.5,
	}

	row := record.Row()
	columns := ModelColumns()
	require.Len(t, row, len(columns))
	for _, column := range columns {
		assert.Contains(t, row, column)
	}

	assert.Equal(t, float64(20), row["Age"])
	assert.Equal(t, "Male", row["Gender"])
	assert.Equal(t, "Premium", row["Subscription Type"])
	assert.Equal(t, 15.5, row["Last Interaction"])
}
