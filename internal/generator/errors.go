package generator

import "errors"

// ErrInvalidPolicy is returned by [Generate] when the supplied policy fails
// validation: the length is outside the accepted bounds or no character
// class is enabled. The returned error wraps ErrInvalidPolicy together with
// the exact cause; match it with [errors.Is].
var ErrInvalidPolicy = errors.New("invalid password policy")
