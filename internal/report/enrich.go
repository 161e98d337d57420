package report

import (
	"github.com/Vaishnavi639/DailyDashboard/internal/cache"
	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

const (
	guestName    = "Guest"
	noPhone      = "N/A"
	maskedPrefix = 6
)

// EnrichOrders merges contact display fields into each order in place.
// Orders whose contact reference resolves to nothing get the guest
// fill-ins; a nil contacts map means every order falls back.
func EnrichOrders(orders []entity.Order, contacts map[string]entity.Contact) {
	for i := range orders {
		o := &orders[i]

		o.CustomerName = guestName
		o.CustomerPhone = noPhone
		o.CustomerEmail = nil

		if o.ChatwootContactId != nil {
			if c, ok := contacts[*o.ChatwootContactId]; ok {
				if c.Name != nil && *c.Name != "" {
					o.CustomerName = *c.Name
				}
				if c.PhoneNumber != nil && *c.PhoneNumber != "" {
					o.CustomerPhone = *c.PhoneNumber
				}
				o.CustomerEmail = c.Email
			}
		}

		o.CustomerPhoneDisplay = MaskPhone(o.CustomerPhone)

		o.ChannelName = cache.UnknownChannel
		if o.ChannelTypeId != nil {
			o.ChannelName = cache.ChannelName(*o.ChannelTypeId)
		}
	}
}

// MaskPhone truncates phone numbers longer than six characters to
// their first six plus an ellipsis; shorter ones show in full and the
// N/A placeholder passes through.
func MaskPhone(phone string) string {
	if phone == "" || phone == noPhone {
		return noPhone
	}
	if len(phone) > maskedPrefix {
		return phone[:maskedPrefix] + "..."
	}
	return phone
}
