// Package orgbook implements the bookkeeping model behind a role-play
// character tracker: a six-balance ledger split into white and black
// accounting, an append-only transaction journal, foreign-currency holdings
// with fetched or manual rates, a laundering converter, and the side
// registries a character keeps (inventory, property, notes, command
// binders).
//
// All state is owned by an account namespace and persisted as one JSON
// document per (account, domain) pair; see the store package. The obk
// command line is the only front end.
package orgbook
