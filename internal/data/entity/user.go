package entity

type UserRole string

const (
	RoleVendor   UserRole = "vendor"
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User role stays nil until the account type is chosen after the
// first OTP login.
type User struct {
	Base
	Email         string    `db:"email"`
	Username      string    `db:"username"`
	FirstName     string    `db:"first_name"`
	LastName      string    `db:"last_name"`
	Phone         *string   `db:"phone"`
	Role          *UserRole `db:"role"`
	EmailVerified bool      `db:"email_verified"`
	IsActive      bool      `db:"is_active"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
