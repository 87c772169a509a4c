package domain

import "errors"

var ErrInvalidInput = errors.New("invalid input")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNoSession = errors.New("no active session")
var ErrProductNotFound = errors.New("product not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrForbidden = errors.New("access forbidden")
