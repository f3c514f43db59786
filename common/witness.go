package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some assets but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrAdminWitnessFailed appears when the method is restricted to
	// the suite administrator but was called by someone else.
	ErrAdminWitnessFailed = "admin witness check failed"
)

const adminKey = "admin"

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller interop.Hash160) {
	if !runtime.CheckWitness(caller) {
		panic(ErrOwnerWitnessFailed)
	}
}

// SetAdmin writes the administrator account of the contract. It is called
// from _deploy only, the key is never rewritten afterwards.
func SetAdmin(ctx storage.Context, admin interop.Hash160) {
	if len(admin) != interop.Hash160Len {
		panic("invalid admin account")
	}
	storage.Put(ctx, adminKey, admin)
}

// Admin returns the administrator account of the contract.
func Admin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// CheckAdminWitness checks that the invocation is witnessed by the contract
// administrator. It panics with ErrAdminWitnessFailed message on fail.
func CheckAdminWitness(ctx storage.Context) {
	if !runtime.CheckWitness(Admin(ctx)) {
		panic(ErrAdminWitnessFailed)
	}
}
