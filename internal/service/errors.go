package service

import "errors"

var (
	// ErrLoginFailed wraps any failure of the login transition, including
	// a successful credential exchange followed by a failed identity
	// fetch.
	ErrLoginFailed = errors.New("login failed")

	// ErrRegisterFailed wraps a rejected registration request.
	ErrRegisterFailed = errors.New("registration failed")

	// ErrShareUserNotFound is returned by ShareByEmail when no account
	// matches the given email.
	ErrShareUserNotFound = errors.New("no user with that email")
)
