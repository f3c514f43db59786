/*
Package staking implements Staking contract of the rewards suite.

Staking contract keeps the catalog of staking pools and the ledger of open
stake positions, and settles time-based yield claims. Pool yield is a yearly
rate in basis points accrued linearly per elapsed second (simple interest,
no compounding). Claims are paid from the per-pool reward budget funded by
the administrator; a claim that the budget cannot cover in full fails
without any state change.

Claims read the caller's reputation multiplier from the Reputation contract
and scale the base reward by it; deposits notify the Reputation contract
about account activity. The Staking contract never writes reputation state
directly.

# Contract notifications

PoolCreated notification:

	PoolCreated:
	  - name: id
	    type: Integer
	  - name: name
	    type: String

PoolUpdated notification:

	PoolUpdated:
	  - name: id
	    type: Integer

RewardsAdded notification:

	RewardsAdded:
	  - name: id
	    type: Integer
	  - name: amount
	    type: Integer

Stake, Unstake, Claim and EmergencyWithdraw notifications:

	Stake:
	  - name: account
	    type: Hash160
	  - name: poolID
	    type: Integer
	  - name: amount
	    type: Integer

	Unstake:
	  - name: account
	    type: Hash160
	  - name: poolID
	    type: Integer
	  - name: amount
	    type: Integer

	Claim:
	  - name: account
	    type: Hash160
	  - name: poolID
	    type: Integer
	  - name: amount
	    type: Integer

	EmergencyWithdraw:
	  - name: account
	    type: Hash160
	  - name: poolID
	    type: Integer
	  - name: amount
	    type: Integer
*/
package staking

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'countPools' -> int
   number of pools ever created, the last assigned pool id
 - 'tokenContract' -> interop.Hash160
   NEP-17 contract backing deposits and payouts
 - 'reputationContract' -> interop.Hash160
   Reputation contract of the suite
 - 'admin' -> interop.Hash160
   suite administrator
 - 'paused' -> []byte{1}
   present while the contract is paused
 - p<id> -> std.Serialize(Pool)
   pool catalog, id is a little-endian integer
 - s<interop.Hash160><id> -> std.Serialize(Position)
   open positions keyed by account and pool id

# Accounting
TotalDeposited of every pool equals the sum of Amount of all open positions
referencing it. The contract token balance covers all principals plus all
pool reward budgets.
*/
