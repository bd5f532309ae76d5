package errs

// Error categories shared by every use case. Concrete sentinels are marked with exactly one of
// these so that the transport layer can map outcomes without knowing each use case.
var (
	ErrInvalidInput   = New("invalid input")
	ErrNotFound       = New("not found")
	ErrConflict       = New("conflict")
	ErrUnauthorized   = New("unauthorized")
	ErrStorageFailure = New("storage failure")
)

// Category returns the category sentinel err is marked with, or ErrStorageFailure when err carries
// none of them.
func Category(err error) error {
	for _, c := range []error{ErrInvalidInput, ErrNotFound, ErrConflict, ErrUnauthorized, ErrStorageFailure} {
		if Is(err, c) {
			return c
		}
	}
	return ErrStorageFailure
}
