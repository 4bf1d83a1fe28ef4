package service

import "errors"

// Sentinel errors shared by the record services. Handlers map these onto
// stable HTTP status codes instead of forwarding raw store messages.
var (
	// ErrMissingKey indicates the caller supplied an empty record key.
	ErrMissingKey = errors.New("missing record key")
	// ErrStudentNotFound indicates no student exists for the given key.
	ErrStudentNotFound = errors.New("student not found")
	// ErrCourseNotFound indicates no course enrollment exists for the given id.
	ErrCourseNotFound = errors.New("course enrollment not found")
)
