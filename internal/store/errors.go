package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStyleAlreadyExists is returned when a style with the same name is
	// already in the library.
	ErrStyleAlreadyExists = errors.New("style already exists")

	// ErrStyleNotFound is returned when no style has the requested name.
	ErrStyleNotFound = errors.New("style was not found")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver other
	// than sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan style row")
)
