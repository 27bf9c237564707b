// Package auth issues and validates the bearer tokens that guard the API.
//
// Tokens are HMAC-signed JWTs minted for a user through one of their OAuth
// clients. Issuance returns a golang.org/x/oauth2 Token so callers get the
// standard access token, type and expiry triple; validation yields a Principal
// naming the user, client and token.
package auth
