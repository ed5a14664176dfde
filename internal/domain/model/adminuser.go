package model

// AdminUser is the single dashboard credential. PasswordHash is a bcrypt
// hash; the plaintext password never leaves the login request.
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string
}
