package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// e-mail index of users or influencers.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrInfluencerNotFound is returned when no influencer matches the id.
	ErrInfluencerNotFound = errors.New("influencer was not found")

	// ErrFileNotFound is returned when a stored upload does not exist.
	ErrFileNotFound = errors.New("file was not found")

	// ErrInvalidFileName is returned for names that are empty or that
	// would escape the upload storage (path separators, "..").
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrStoreUnavailable is returned when the backend could not be reached
	// or rejected the operation for a transient reason.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// database driver.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// methods when a backend operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or command fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrEncodingDocument is returned when a record cannot be serialized.
	ErrEncodingDocument = errors.New("error encoding document")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into its model.
	ErrDecodingDocument = errors.New("error decoding document")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
