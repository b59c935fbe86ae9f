// Package store implements persistence for the birthday keeper.
//
// Everything is stored through a single key-value capability,
// [KeyValueStore]. Several backends implement it (in-process map, JSON file,
// SQLite/PostgreSQL table, redis), and two decorators add behaviour on top:
// [TimeoutStore] bounds every call, and [Transactor] serializes
// read-modify-write sequences per key.
//
// The repositories ([ContactRepository], [AccountRepository],
// [SessionRepository]) encode domain records as JSON under the keys
//
//	users              JSON array of accounts
//	currentUser        plain string, the last authenticated email
//	contacts_<email>   JSON array of that owner's contacts
package store
