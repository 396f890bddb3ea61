package service

import "errors"

var (
	// ErrPasswordRejected wraps the password policy violations returned on
	// the encrypt path.
	ErrPasswordRejected = errors.New("password does not meet the policy")

	// ErrServerManagedEntry is returned when an entry that was never
	// encrypted on the device is handed to DecryptEntry.
	ErrServerManagedEntry = errors.New("entry is server managed")

	// ErrRemoteStore wraps transport failures of the media store.
	ErrRemoteStore = errors.New("remote media store failed")

	// ErrMediaStoreDisabled is returned when media is requested but no
	// adapter is configured.
	ErrMediaStoreDisabled = errors.New("media store is not configured")
)
