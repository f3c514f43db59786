/*
Package reputation contains implementation of Reputation contract deployed
alongside the staking and farming contracts of the suite.

The contract scores accounts in basis-point integer arithmetic from five
components: an external credential oracle, peer attestations weighted by the
attester's own reputation, staked value, attestation-issuing participation
and account tenure. Components are aggregated with administrator-configured
weights that always sum to exactly 10000, and the resulting total score
decays daily absent recomputation. The staking and farming contracts read
multiplierOf on every reward claim, so the total score translates into a
reward bonus of up to 20% at the score cap.

Scores change only through recompute: any account may be recomputed by
anyone at any time, and running it twice at the same ledger timestamp yields
identical state. Badge tiers are swept on every recompute and each badge is
earned at most once.

# Contract notifications

ReputationUpdated notification. This notification is produced when an
account's record is recomputed. Carries the account and its new total
score.

	ReputationUpdated:
	  - name: account
	    type: Hash160
	  - name: total
	    type: Integer

Attest notification. This notification is produced when a new attestation
is issued.

	Attest:
	  - name: id
	    type: Hash256
	  - name: attester
	    type: Hash160
	  - name: subject
	    type: Hash160
	  - name: weight
	    type: Integer

Revoke notification. This notification is produced when an attestation is
revoked.

	Revoke:
	  - name: id
	    type: Hash256
	  - name: attester
	    type: Hash160
	  - name: subject
	    type: Hash160

WeightsUpdated notification. This notification is produced when the
administrator replaces the aggregation weights.

	WeightsUpdated:
	  - name: credential
	    type: Integer
	  - name: attestation
	    type: Integer
	  - name: staking
	    type: Integer
	  - name: participation
	    type: Integer
	  - name: time
	    type: Integer

BadgeCreated notification. This notification is produced when a new badge
tier is registered.

	BadgeCreated:
	  - name: id
	    type: Integer
	  - name: name
	    type: String

BadgeAwarded notification. This notification is produced when an account
earns a badge, either through the recompute sweep or a manual award.

	BadgeAwarded:
	  - name: account
	    type: Hash160
	  - name: id
	    type: Integer

# Contract storage model

Current conventions:
 <nickname>: human-readable name
 []byte: raw byte slice
 serialized(T): serialized structure of type T

Data schema:

 # Suite
 admin -> interop.Hash160
   administrator of the contract suite

 paused -> []byte
   one byte, presence pauses all state-changing operations

 credentialContract -> interop.Hash160
   address of the credential oracle contract

 stakingContract -> interop.Hash160
   address of the staking contract

 farmingContract -> interop.Hash160
   address of the farming contract

 # Scoring
 weights -> serialized(Weights)
   component aggregation weights in basis points, sum is 10000

 decayRate -> int
   daily score decay in basis points

 'r' + <account, interop.Hash160> -> serialized(Record)
   reputation record of the account

 # Attestations
 'a' + <id, interop.Hash256> -> serialized(Attestation)
   attestation by its SHA-256 id

 'i' + <subject, interop.Hash160> + <id, interop.Hash256> -> interop.Hash256
   subject index, value repeats the attestation id

 'g' + <attester, interop.Hash160> -> int
   cumulative number of attestations issued by the account

 # Badges
 countBadges -> int
   number of badges ever created, ids are sequential from 1

 'b' + <id, little-endian int> -> serialized(Badge)
   badge tier by id

 'u' + <account, interop.Hash160> + <id, little-endian int> -> int
   earn timestamp of the badge for the account, set once
*/
package reputation
