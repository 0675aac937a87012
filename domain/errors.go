package domain

import "errors"

var (
	// ErrEmptyInput indicates the player tried to send a blank action.
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrTransport indicates the request never produced a usable response:
	// a network failure or a non-2xx status from the game server.
	ErrTransport = errors.New("transport failure")

	// ErrParse indicates the response body could not be decoded.
	ErrParse = errors.New("malformed response")
)

// EmptyInputNotice is the blocking notice shown when a blank action is submitted.
const EmptyInputNotice = "Please enter a response before sending."
