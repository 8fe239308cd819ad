// Package metadata is the client's small key/value store in SQLite.
//
// The only consumer today is the session token store: the bearer token
// returned by the auth service is kept under KeyToken, and the signed-in
// email under KeyEmail, so a restarted client can resume its session
// without asking for credentials again.
//
//	store := metadata.NewTokenStore(db)
//	_ = store.Save(ctx, metadata.Token{Value: "abc123", Email: "a@b.c"})
//	tok, ok, _ := store.Load(ctx)
//	_ = store.Remove(ctx)
package metadata
