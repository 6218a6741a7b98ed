package idgen

import "github.com/google/uuid"

// NewFunc produces identifiers; tests may replace it with a deterministic
// stub.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier as string.
func New() string { return NewFunc() }
