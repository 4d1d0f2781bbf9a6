package service

import "errors"

// ErrFormNotFound is returned when a referenced form id does not exist.
// Controllers translate it to a 404 before any scoring happens.
var ErrFormNotFound = errors.New("form not found")

// ErrInvalidForm wraps authoring-time validation failures so controllers
// can answer 400 instead of 500.
var ErrInvalidForm = errors.New("invalid form")
