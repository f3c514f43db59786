/*
Package farming implements Farming contract of the rewards suite.

Farming contract keeps the catalog of liquidity farms and the ledger of
open LP positions. A farm distributes rewards from a finite budget within
a fixed [startTime, endTime] window at a per-second rate proportional to
the deposited amount; accrual stops at endTime while principal withdrawal
stays available forever.

Claims read the caller's reputation multiplier from the Reputation
contract and add a bonus of base * (multiplier - 10000) / 10000 on top of
the base reward. The Staking contract instead scales the whole base by the
multiplier; the two forms coincide for multipliers at or above neutral but
are kept as distinct strategies.

# Contract notifications

FarmCreated notification:

	FarmCreated:
	  - name: id
	    type: Integer
	  - name: name
	    type: String

FarmUpdated notification:

	FarmUpdated:
	  - name: id
	    type: Integer

RewardsAdded notification:

	RewardsAdded:
	  - name: id
	    type: Integer
	  - name: amount
	    type: Integer

Deposit, Withdraw, Claim and EmergencyWithdraw notifications:

	Deposit:
	  - name: account
	    type: Hash160
	  - name: farmID
	    type: Integer
	  - name: amount
	    type: Integer

	Withdraw:
	  - name: account
	    type: Hash160
	  - name: farmID
	    type: Integer
	  - name: amount
	    type: Integer

	Claim:
	  - name: account
	    type: Hash160
	  - name: farmID
	    type: Integer
	  - name: amount
	    type: Integer

	EmergencyWithdraw:
	  - name: account
	    type: Hash160
	  - name: farmID
	    type: Integer
	  - name: amount
	    type: Integer
*/
package farming

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'countFarms' -> int
   number of farms ever created, the last assigned farm id
 - 'tokenContract' -> interop.Hash160
   NEP-17 contract backing deposits and payouts
 - 'reputationContract' -> interop.Hash160
   Reputation contract of the suite
 - 'admin' -> interop.Hash160
   suite administrator
 - 'paused' -> []byte{1}
   present while the contract is paused
 - f<id> -> std.Serialize(Farm)
   farm catalog, id is a little-endian integer
 - l<interop.Hash160><id> -> std.Serialize(Position)
   open LP positions keyed by account and farm id

# Accounting
TotalDeposited of every farm equals the sum of Amount of all open positions
referencing it. The contract token balance covers all principals plus all
farm reward budgets.
*/
