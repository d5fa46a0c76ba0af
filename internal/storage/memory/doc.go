// Package memory provides in-memory storage for the Demo Forums API.
//
// It owns the entity collections (users, forums, posts, comments) and the
// session table. State lives for the process lifetime only; there is no
// persistence across restarts.
package memory
