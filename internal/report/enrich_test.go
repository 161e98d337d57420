package report

import (
	"testing"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"5551234567", "555123..."},
		{"555", "555"},
		{"555123", "555123"},
		{"5551234", "555123..."},
		{"N/A", "N/A"},
		{"", "N/A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestEnrichOrdersWithContact(t *testing.T) {
	orders := []entity.Order{
		{
			OrderNumber:       "A-1",
			ChatwootContactId: strptr("42"),
			ChannelTypeId:     strptr("0199947b-b0a0-7885-a32a-4cb744df96a5"),
		},
	}
	contacts := map[string]entity.Contact{
		"42": {
			Id:          "42",
			Name:        strptr("Jane Smith"),
			PhoneNumber: strptr("5551234567"),
			Email:       strptr("jane@example.com"),
		},
	}

	EnrichOrders(orders, contacts)

	o := orders[0]
	assert.Equal(t, "Jane Smith", o.CustomerName)
	assert.Equal(t, "5551234567", o.CustomerPhone)
	assert.Equal(t, "555123...", o.CustomerPhoneDisplay)
	require.NotNil(t, o.CustomerEmail)
	assert.Equal(t, "jane@example.com", *o.CustomerEmail)
	assert.Equal(t, "Website", o.ChannelName)
}

func TestEnrichOrdersNoContactFallsBackToGuest(t *testing.T) {
	orders := []entity.Order{
		{ChatwootContactId: strptr("missing"), ChannelTypeId: strptr("bogus-channel")},
		{ChatwootContactId: nil, ChannelTypeId: nil},
	}

	EnrichOrders(orders, nil)

	for _, o := range orders {
		assert.Equal(t, "Guest", o.CustomerName)
		assert.Equal(t, "N/A", o.CustomerPhone)
		assert.Equal(t, "N/A", o.CustomerPhoneDisplay)
		assert.Nil(t, o.CustomerEmail)
		assert.Equal(t, "Unknown", o.ChannelName)
	}
}

func TestEnrichOrdersEmptyContactFields(t *testing.T) {
	orders := []entity.Order{{ChatwootContactId: strptr("7")}}
	contacts := map[string]entity.Contact{
		"7": {Id: "7", Name: strptr(""), PhoneNumber: nil},
	}

	EnrichOrders(orders, contacts)

	assert.Equal(t, "Guest", orders[0].CustomerName)
	assert.Equal(t, "N/A", orders[0].CustomerPhone)
}
