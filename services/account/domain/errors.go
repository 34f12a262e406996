package domain

import "errors"

// ErrInvalidCredentials is returned for any username/password mismatch. It
// never says which half was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")
