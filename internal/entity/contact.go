package entity

// Contact lives in the contacts store. It is referenced from the
// primary store via customers.chatwoot_contact_id with no enforced
// integrity, so a lookup may legitimately find nothing.
type Contact struct {
	Id          string  `db:"id" json:"id"`
	Name        *string `db:"name" json:"name"`
	PhoneNumber *string `db:"phone_number" json:"phone_number"`
	Email       *string `db:"email" json:"email"`
}
