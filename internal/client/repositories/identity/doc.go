// Package identity persists the uploader's session identity in the local
// SQLite database, one row per application id.
//
// Get returns (nil, nil) when nothing is stored for the app id so callers can
// tell "no session yet" apart from a storage failure.
//
//	repo := identity.NewSQLiteRepository(db)
//	cur, _ := repo.Get(ctx, appID)
//	_ = repo.Save(ctx, appID, &models.Identity{UserID: id, Provider: "anonymous", Anonymous: true})
package identity
