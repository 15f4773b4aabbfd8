package application

import "errors"

var ErrConflict = errors.New("duplicate request")
