package apriori

import "errors"

// ErrInvalidArgument is returned (wrapped with context) when a
// configuration constraint is violated: a threshold outside [0,1], a
// max below its min, a non-positive delta, or a negative count, whether
// set through ConfigBuilder or passed directly to FindFrequentItemSets or
// GenerateAssociationRules. AssociationRule values are plain structs and
// are not validated.
var ErrInvalidArgument = errors.New("apriori: invalid argument")

// ErrUnsupported is returned when an operation is requested that this
// implementation cannot provide; the Finder returns it when a level
// generates more candidates than Config.MaxCandidates allows. Rules derived
// without witness tracking are not an error: they carry a nil Interval.
var ErrUnsupported = errors.New("apriori: unsupported")

// argumentError wraps ErrInvalidArgument with the offending field and a
// human-readable reason, so callers can both errors.Is(err, ErrInvalidArgument)
// and read a precise message.
type argumentError struct {
	field  string
	reason string
}

func (e *argumentError) Error() string {
	return "apriori: invalid argument: " + e.field + ": " + e.reason
}

func (e *argumentError) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(field, reason string) error {
	return &argumentError{field: field, reason: reason}
}
