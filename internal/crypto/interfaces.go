package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into one-way digests and checks them.
//
// New digests always use the current scheme (bcrypt). Verify also accepts
// digests of the legacy scheme so that existing accounts keep working; such
// digests are reported by NeedsRehash and replaced on the next login.
type PasswordHasher interface {
	// Hash returns a fresh salted digest of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. Digests of an unknown
	// format never verify.
	Verify(password, digest string) bool

	// NeedsRehash reports whether digest was produced by an outdated scheme
	// or with weaker parameters than the current ones.
	NeedsRehash(digest string) bool
}
