package domain

type Role string

const (
	RoleCustomer Role = "Customer"
	// RoleHotelier is the vehicle-owner role: hoteliers list vehicles and
	// confirm their return.
	RoleHotelier Role = "Hotelier"
	RoleAdmin    Role = "Admin"
)

// Actor is the already-authenticated caller of a service operation. It is
// extracted from the access token by the HTTP middleware; services trust it
// and perform their own role and ownership checks.
type Actor struct {
	ID   int32
	Role Role
}

type User struct {
	ID           int32   `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Name         string  `json:"name"`
	PhoneNumber  string  `json:"phone_number"`
	Role         Role    `json:"role"`
	Profit       int64   `json:"profit"` // accumulated settlement balance, minor units
	Rating       float64 `json:"rating"` // running average of received ratings, 0 = unrated
	CreatedOn    string  `json:"created_on"`
	UpdatedOn    string  `json:"updated_on"`
}
