package techquiry

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/uptrace/bun"
)

// UsernameRegex is the pattern every username must match: a leading letter
// followed by 2 to 14 letters, digits, or underscores.
const UsernameRegex = `^[A-Za-z][A-Za-z0-9_]{2,14}$`

var usernamePattern = regexp.MustCompile(UsernameRegex)

// ValidUsername reports whether the given username matches UsernameRegex.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// UserLogin is the login record model: one account's identity and
// credential material.
type UserLogin struct {
	bun.BaseModel `bun:"table:user_login,alias:ul"`
	ID            int    `bun:"user_id,pk,autoincrement" json:"user_id,omitempty"`
	Username      string `bun:"username,notnull,unique" json:"username,omitempty"`
	PasswordHash  []byte `bun:"password_hash,notnull" json:"-"`
	PasswordSalt  []byte `bun:"password_salt,notnull" json:"-"`
	DisplayName   string `bun:"display_name" json:"display_name,omitempty"`
}

// Validate will run the username validation rules
func (u UserLogin) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(
			&u.Username,
			validation.Required,
			validation.Match(usernamePattern),
		),
	)
}

// SetPassword replaces the credential material with a fresh salt and the
// matching hash of the given plaintext. Hash and salt always change as a
// pair.
func (u *UserLogin) SetPassword(password string) error {
	salt, err := GenerateSalt()
	if err != nil {
		return err
	}

	u.PasswordSalt = salt
	u.PasswordHash = HashPassword(password, salt)
	return nil
}

// WithoutCredentials returns a copy of the record with the hash and salt
// blanked, safe to hand back to API clients.
func (u UserLogin) WithoutCredentials() UserLogin {
	u.PasswordHash = nil
	u.PasswordSalt = nil
	return u
}
