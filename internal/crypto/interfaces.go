package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way digests and
// checks candidates against them.
//
// Digests are self-describing: a bcrypt digest starts with "$2", an argon2id
// digest is a PHC string starting with "$argon2id$". Verify accepts either
// form regardless of which algorithm Hash is configured to produce, so
// switching APP_PASSWORD_HASHER does not lock out existing users.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Two calls with the same
	// password produce different digests.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. It never panics and
	// returns false for an empty, malformed or unknown digest.
	Verify(password, digest string) bool
}
