package vault

import "errors"

var (
	// ErrDuplicateToken is the insert-time uniqueness violation. It is an
	// expected, retriable condition inside the mint loop and never reaches
	// users.
	ErrDuplicateToken = errors.New("token already exists")

	// ErrRelayFailed means the transport rejected the relay into the archive;
	// no record is created.
	ErrRelayFailed = errors.New("relay to archive failed")

	// ErrDeliveryFailed means re-delivery to the requesting user failed; the
	// item record stays valid for future attempts.
	ErrDeliveryFailed = errors.New("delivery from archive failed")

	// ErrNotFound means the supplied token has no matching record.
	ErrNotFound = errors.New("no item with this token")

	// ErrTokenSpaceExhausted is returned when the mint loop gives up. With
	// 900M tokens this is unreachable in practice; the cap exists so the loop
	// provably terminates even if the space ever saturates.
	ErrTokenSpaceExhausted = errors.New("token space exhausted")
)
