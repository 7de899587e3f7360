package cover

import "errors"

var (
	// ErrConfigurationMissing is returned when the configuration table has no rows.
	ErrConfigurationMissing = errors.New("image service configuration missing")

	// ErrRecordNotFound is returned when no book image matches the key.
	ErrRecordNotFound = errors.New("image record not found")

	// ErrStoreUnavailable wraps connection and query failures of the backing store.
	ErrStoreUnavailable = errors.New("image store unavailable")

	// ErrUnknownState is returned for moderation states with no URL mapping.
	ErrUnknownState = errors.New("unknown moderation state")

	// ErrUnknownPreset is returned when a preset name does not match any preset.
	ErrUnknownPreset = errors.New("unknown image preset")
)
