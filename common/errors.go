package common

import "errors"

type CustomError struct {
	error
	code int
}

var ErrInvalidArgument = CustomError{
	error: errors.New("invalid argument"),
	code:  400,
}
var ErrCorruption = CustomError{
	error: errors.New("block corruption"),
	code:  500,
}
var ErrWriterClosed = CustomError{
	error: errors.New("writer is already closed"),
	code:  400,
}
