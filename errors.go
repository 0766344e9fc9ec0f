package minmap

import "errors"

var ErrInvalidSize = errors.New("minmap: size must be positive")
