package windom

import "errors"

// ErrInvalidConfiguration is thrown for construction options that
// cannot be honored: a content type that classifies as neither markup
// nor strict markup, or node-location tracking requested together with
// a strict markup content type. Raised synchronously before any object
// is built.
var ErrInvalidConfiguration = errors.New("invalid window configuration")

// ErrInvalidURL is thrown when a supplied base or referrer URL does
// not parse as an absolute URL.
var ErrInvalidURL = errors.New("invalid URL")
