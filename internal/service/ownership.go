package service

import (
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

// VerifyOwner enforces that only the owner of a resource may mutate it.
// Comparison is strict equality on user id strings; there is no admin
// override path. Pure, shared by every delete flow so authorization
// semantics stay uniform.
func VerifyOwner(resourceOwner, requester string) error {
	if resourceOwner != requester {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}
