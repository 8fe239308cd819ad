package models

// AuthUser is the identity returned by the auth backend for /signup and
// /users/me (inside its "data" envelope).
type AuthUser struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// Credentials is the body of /signup and /signin.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is what the register form collects. Confirm never leaves the
// client.
type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Credentials drops the confirmation field.
func (r Registration) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// Profile is the current user as known to the content backend. It is always
// replaced wholesale by the server's representation.
type Profile struct {
	ID        string `json:"_id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name"`
	About     string `json:"about"`
	AvatarURL string `json:"avatar"`
}

// ProfileUpdate is the body of PATCH /users/me.
type ProfileUpdate struct {
	Name  string `json:"name" validate:"required,min=2,max=40"`
	About string `json:"about" validate:"required,min=2,max=200"`
}

// AvatarUpdate is the body of PATCH /users/me/avatar.
type AvatarUpdate struct {
	AvatarURL string `json:"avatar" validate:"required,url"`
}
