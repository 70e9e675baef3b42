package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordingNotFound is returned when no recording with the given id
	// exists for the requesting user.
	ErrRecordingNotFound = errors.New("recording was not found")

	// ErrRecordingAlreadyExists is returned when an object key is registered
	// twice.
	ErrRecordingAlreadyExists = errors.New("recording already exists")

	// ErrChatNotFound is returned when no chat with the given id exists for
	// the requesting user.
	ErrChatNotFound = errors.New("chat was not found")

	// ErrObjectNotFound is returned by [ObjectStorage] when the object key
	// does not exist in the bucket.
	ErrObjectNotFound = errors.New("object was not found")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Object storage errors.
var (
	// ErrPresigning is returned when a presigned URL cannot be produced.
	ErrPresigning = errors.New("failed to presign object request")

	// ErrObjectRequest is returned when a GetObject or DeleteObject call
	// fails for a reason other than a missing key.
	ErrObjectRequest = errors.New("object storage request failed")
)
