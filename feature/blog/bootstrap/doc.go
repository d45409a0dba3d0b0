// Package bootstrap imports the remote blog into an empty local store.
//
// The remote API only lists comments per post, so the import fans out one request
// per post. Posts are split into chunks (20 by default); the comment lists of a
// chunk are fetched concurrently and the chunks run one after another, which
// bounds both memory and the number of open connections to the remote API.
//
// Everything is written inside a single transaction: posts with their remote ids,
// then all comments, then the id sequences are realigned. A failed fetch, a
// missing field, an invalid record or a database error rolls the whole import
// back. Running against a store that already holds records fails with a
// PreconditionError before anything is fetched.
package bootstrap
