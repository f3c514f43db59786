package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// ErrPaused appears when a state-changing method is invoked while the
// contract is paused by the administrator.
var ErrPaused = "contract is paused"

const pausedKey = "paused"

// SetPaused toggles the contract-wide pause flag. Witness checks are the
// caller's responsibility.
func SetPaused(ctx storage.Context, paused bool) {
	if paused {
		storage.Put(ctx, pausedKey, []byte{1})
	} else {
		storage.Delete(ctx, pausedKey)
	}
}

// Paused returns the contract-wide pause flag.
func Paused(ctx storage.Context) bool {
	return storage.Get(ctx, pausedKey) != nil
}

// CheckNotPaused panics with ErrPaused message if the contract is paused.
// Every state-changing method except emergency withdrawal goes through it.
func CheckNotPaused(ctx storage.Context) {
	if Paused(ctx) {
		panic(ErrPaused)
	}
}
