package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new account
	// fails because an account with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNoAccountWasFound is returned when a query expected to match at
	// least one account produces an empty result set.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrNoTrackWasFound is returned when a track lookup by id produces an
	// empty result set.
	ErrNoTrackWasFound = errors.New("no track was found")

	// ErrStoreUnavailable is returned (wrapped) when a database operation
	// fails for a transient reason (connection loss, deadlock rollback, or
	// a context deadline) and may succeed if the caller retries.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
