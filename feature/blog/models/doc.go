// Package models defines the two synchronized record kinds, Post and Comment.
//
// Besides the GORM entities it holds three views of each kind:
//   - the projection, i.e. the fields mirrored to and from the remote system,
//     used as diff key and as create/update payload;
//   - the remote shape decoded from the API, whose pointer fields detect missing
//     keys (MissingFieldError);
//   - the URL templates of the remote endpoints.
//
// Compare and FirstDiff are pure functions over projections and decide whether a
// record needs an update.
package models
