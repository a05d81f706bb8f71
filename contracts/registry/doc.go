/*
Package registry implements Registry contract of the model marketplace.

Registry contract is an append-only log of submitted model artifacts keyed
by a 32-byte content digest. Every digest can be registered exactly once
across the whole lifetime of the log, duplicates are rejected in O(1) with
a side index. Entries are totally ordered by submission index; the index
returned by Submit is the canonical entry identifier for downstream
consumers, while weighting keys off the content hash.

The log only ever grows. There is no compaction and no deletion, storage
consumption is unbounded.

# Contract notifications

Submit notification. Produced on every accepted submission.

	Submit:
	  - name: hash
	    type: Hash256
	  - name: index
	    type: Integer
*/
package registry

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'c' -> int
   number of log entries
 - m<index> -> std.Serialize(Model)
   log entries by submission index (Model is a structure defined in
   current package)
 - h<interop.Hash256> -> int
   submission index by content hash, doubles as the uniqueness set
*/
