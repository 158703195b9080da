package models

import "time"

// Sync link kinds understood by the capability opener.
const (
	SyncKindFile = "file"
	SyncKindHTTP = "http"
)

// SyncLink is the persisted descriptor of the external mirror. The live
// file capability is re-opened from Kind and Target; it is never serialized.
type SyncLink struct {
	Kind     string    `json:"kind"`
	Target   string    `json:"target"`
	Label    string    `json:"label,omitempty"`
	LinkedAt time.Time `json:"linked_at"`
}

// PermissionMode is the access mode requested from a file capability.
type PermissionMode string

const (
	PermissionRead      PermissionMode = "read"
	PermissionReadWrite PermissionMode = "readwrite"
)

// Permission is the answer of a file capability to a permission query.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	// PermissionPrompt means access may be granted after RequestPermission.
	PermissionPrompt Permission = "prompt"
)

// SyncStatus describes the state of the external mirror.
type SyncStatus string

const (
	SyncStatusUnlinked     SyncStatus = "unlinked"
	SyncStatusConnected    SyncStatus = "connected"
	SyncStatusDisconnected SyncStatus = "disconnected"
)
