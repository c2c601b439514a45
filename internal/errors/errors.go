package errors

import "errors"

var ErrTripNotFound = errors.New("trip plan not found")
var ErrUserNotFound = errors.New("user not found")
