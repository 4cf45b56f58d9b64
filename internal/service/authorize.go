package service

import "github.com/beatvault/beatvault/models"

// Authorize checks that session's role is one of allowed. A zero-valued
// session (no authenticated account) yields ErrUnauthenticated; an
// authenticated account with the wrong role yields ErrForbidden.
//
// An empty allowed set means any authenticated role passes.
func Authorize(session models.Session, allowed ...models.Role) error {
	if session.AccountID == 0 {
		return ErrUnauthenticated
	}

	if len(allowed) == 0 {
		return nil
	}

	for _, role := range allowed {
		if session.Role == role {
			return nil
		}
	}

	return ErrForbidden
}
