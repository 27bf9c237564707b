// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. When a field is nil
// the method falls back to the mock's default values, so a test only sets up
// the behaviour it cares about:
//
//	authors := &mocks.MockAuthorStore{Err: errors.New("connection refused")}
//	tokens := &mocks.MockTokenService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Principal, error) {
//	        return principal, nil
//	    },
//	}
package mocks
