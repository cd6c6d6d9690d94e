package registry

import "errors"

// ErrUnitNotFound is returned when an import directive names a compilation
// unit the Loader has not been given.
var ErrUnitNotFound = errors.New("imported compilation unit not found")
