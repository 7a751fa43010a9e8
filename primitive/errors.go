package primitive

import "errors"

var ErrInvalidLength = errors.New("max string length must be positive")
