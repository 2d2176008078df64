// Package state binds the persistence-agnostic cores to a [models.SlotStore].
//
// Each adapter owns one or two slots, rehydrates from them on Load, and
// rewrites the whole snapshot after every mutation while holding its mutex,
// so two concurrent mutations never interleave their saves. A slot that fails
// to parse is treated as absent and logged at warn level; a backend read
// failure is returned, since saving over it would discard data we never saw.
//
// Adapters also emit the user-facing notifications for their operations.
package state
