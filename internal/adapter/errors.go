package adapter

import "errors"

var (
	// ErrPermissionDenied is returned by Write when the destination refuses it.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUnsupportedKind is returned by the opener for an unknown link kind.
	ErrUnsupportedKind = errors.New("unsupported sync link kind")
	// ErrEmptyTarget is returned when a link has no path or URL.
	ErrEmptyTarget = errors.New("sync link target is empty")
	// ErrUnexpectedStatus is returned for HTTP responses that carry no
	// permission meaning.
	ErrUnexpectedStatus = errors.New("unexpected http status")
	// ErrNoCredentials is returned when the keyring holds no entry for a target.
	ErrNoCredentials = errors.New("no stored credentials")
)
