package hvscmeta

import (
	"github.com/simonhull/hvscmeta/internal/types"
)

// Sentinel errors, re-exported from internal/types.
var (
	ErrNotFound      = types.ErrNotFound
	ErrInvalidFormat = types.ErrInvalidFormat
	ErrParse         = types.ErrParse
)

// IOError is an alias to types.IOError.
type IOError = types.IOError

// InvalidFormatError is an alias to types.InvalidFormatError.
type InvalidFormatError = types.InvalidFormatError

// NotFoundError is an alias to types.NotFoundError.
type NotFoundError = types.NotFoundError

// ParseError is an alias to types.ParseError.
type ParseError = types.ParseError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError
