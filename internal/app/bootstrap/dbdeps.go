// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// The Mongo client is the only long-lived shared resource: it is
// established once at startup and reused by every request.
type DBDeps struct {
	PitwallMongoClient   *mongo.Client
	PitwallMongoDatabase *mongo.Database
}
