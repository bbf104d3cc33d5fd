package constructor

import "errors"

// ErrInconsistentPictures signals that independent pictures disagree on a
// property that should be geometrically invariant: constructibility of an
// object, analytic equality, collinearity, or incidence. The configuration
// under analysis is rejected; the process continues.
var ErrInconsistentPictures = errors.New("pictures disagree on an invariant property")

// ErrInconstructiblePictures signals that the reseed budget was exhausted
// without finding a random instance in which the whole configuration is
// constructible.
var ErrInconstructiblePictures = errors.New("no random instance of the configuration is constructible")

// ErrInternalInvariant signals a broken internal assumption, e.g. an object
// registered twice. Not recoverable.
var ErrInternalInvariant = errors.New("internal invariant violated")
