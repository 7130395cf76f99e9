package errors

import "errors"

var ErrEmailExists = errors.New("user with this email already exists")
var ErrTourExists = errors.New("tour with this name already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
