package entity

// BusinessAccount identifies the tenant a report is generated for.
type BusinessAccount struct {
	Id    string `db:"id" json:"id"`
	Name  string `db:"business_name" json:"business_name"`
	Email string `db:"business_email" json:"business_email"`
}
