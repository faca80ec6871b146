package board

import "errors"

var (
	ErrMalformedEncoding     = errors.New("malformed position encoding")
	ErrInvalidSquare         = errors.New("invalid square")
	ErrIllegalMove           = errors.New("illegal move")
	ErrInternalInconsistency = errors.New("internal inconsistency")
)
