package core

import "errors"

// ErrInvalidParameter is returned (wrapped) when a generator is asked to work
// with a depth, size or dimension outside its domain. No partial output is
// ever returned alongside it.
var ErrInvalidParameter = errors.New("invalid parameter")
