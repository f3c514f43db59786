package credoracle

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetScore stores the credential score of an account. The contract is a
// test stand-in for the external credential registry, it performs no access
// control.
func SetScore(account interop.Hash160, score int) {
	storage.Put(storage.GetContext(), account, score)
}

// CredentialScore returns the stored credential score of an account, zero
// when unset.
func CredentialScore(account interop.Hash160) int {
	val := storage.Get(storage.GetReadOnlyContext(), account)
	if val == nil {
		return 0
	}
	return val.(int)
}
