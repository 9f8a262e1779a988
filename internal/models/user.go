package models

// Column names of the users worksheet header row.
const (
	UserColName               = "name"
	UserColPaymentPhone       = "payment_phone"
	UserColCallContact        = "call_contact"
	UserColUsername           = "username"
	UserColPassword           = "password"
	UserColEmail              = "email"
	UserColPaymentAccountName = "payment_account_name"
	UserColPaymentNetwork     = "payment_network"
)

// UserColumns is the users worksheet column order used for appended rows.
var UserColumns = []string{
	UserColName,
	UserColPaymentPhone,
	UserColCallContact,
	UserColUsername,
	UserColPassword,
	UserColEmail,
	UserColPaymentAccountName,
	UserColPaymentNetwork,
}

// User represents one data row of the users worksheet.
type User struct {
	Name               string `json:"name"`                 // Full name
	PaymentPhone       string `json:"payment_phone"`        // Phone number for cash transfer
	CallContact        string `json:"call_contact"`         // Contact phone number
	Username           string `json:"username"`             // Unique username (case-insensitive)
	PasswordHash       string `json:"-"`                    // Bcrypt hash, never serialized
	Email              string `json:"email"`                // User email
	PaymentAccountName string `json:"payment_account_name"` // Account name of the payment phone
	PaymentNetwork     string `json:"payment_network"`      // Network provider of the payment phone
}

// Row returns the user as a worksheet row in UserColumns order.
func (u User) Row() []string {
	return []string{
		u.Name,
		u.PaymentPhone,
		u.CallContact,
		u.Username,
		u.PasswordHash,
		u.Email,
		u.PaymentAccountName,
		u.PaymentNetwork,
	}
}

// UserFromRecord builds a User from a header-keyed worksheet record.
func UserFromRecord(rec map[string]string) User {
	return User{
		Name:               rec[UserColName],
		PaymentPhone:       rec[UserColPaymentPhone],
		CallContact:        rec[UserColCallContact],
		Username:           rec[UserColUsername],
		PasswordHash:       rec[UserColPassword],
		Email:              rec[UserColEmail],
		PaymentAccountName: rec[UserColPaymentAccountName],
		PaymentNetwork:     rec[UserColPaymentNetwork],
	}
}
