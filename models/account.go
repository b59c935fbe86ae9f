package models

// Account is a registered user of the register.
//
// Email is the account identity and is unique across all accounts.
// Password is kept as entered; the persisted "users" record format is
// shared with earlier installations and stores it verbatim.
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationForm is the raw input of the sign-up screen.
type RegistrationForm struct {
	Username        string `validate:"required"`
	Email           string `validate:"required,looseemail"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// Account converts the form into the account that gets persisted.
func (f RegistrationForm) Account() Account {
	return Account{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
	}
}
