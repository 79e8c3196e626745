package domain

// User is the session record mirrored to storage. ID is opaque: a fixed value
// for the demo credential login, or derived from the verification time for
// OTP-created accounts.
type User struct {
	ID       string `json:"id" db:"id"`
	Phone    string `json:"phone" db:"phone"`
	Name     string `json:"name,omitempty" db:"name"`
	Email    string `json:"email,omitempty" db:"email"`
	Username string `json:"username,omitempty" db:"username"`
}

// ProfilePatch carries optional profile fields; nil means "leave unchanged".
type ProfilePatch struct {
	Phone    *string `json:"phone,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
}

// Apply shallow-merges the patch over u.
func (p ProfilePatch) Apply(u *User) {
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
}
