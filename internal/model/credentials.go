package model

// Credentials is the transient payload of one auth submission. It is never
// stored; the controller drops it as soon as the submission resolves.
type Credentials struct {
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password,omitempty" validate:"omitempty"`
}

// SignupCredentials carries the extra confirm-password rule that only applies
// in signup mode.
type SignupCredentials struct {
	Email           string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}
