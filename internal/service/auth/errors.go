package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType indicates a validly signed token minted for another purpose.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrRevokedClient indicates the token's OAuth client was revoked or removed.
	ErrRevokedClient = errors.New("oauth client revoked")

	// ErrClientMismatch indicates the client does not belong to the token's user,
	// or is not a personal access client.
	ErrClientMismatch = errors.New("oauth client cannot issue this token")
)
