package combo

import "errors"

// ErrInvalidInput is returned for malformed groups, alias tables or priority lists.
var ErrInvalidInput = errors.New("invalid input")
