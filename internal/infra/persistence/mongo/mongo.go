// Package mongo contains the document store implementation of the persistence layer.
package mongo

import (
	"context"
	"log/slog"
	"net"

	"github.com/IbrahimMurad/alx-files-manager/config"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/lifecycle"
	"github.com/IbrahimMurad/alx-files-manager/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	defaultHost     = "localhost"
	defaultPort     = "27017"
	defaultDatabase = "files_manager"

	usersCollection    = "users"
	sessionsCollection = "sessions"
	filesCollection    = "files"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database handle.
// Indexes are ensured on start when auto migration is enabled.
func New(params Params) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(connectionURI(params.Config.Mongo)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(databaseName(params.Config.Mongo))

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if params.Config.Persistence.AutoMigrate {
				if err := EnsureIndexes(ctx, db); err != nil {
					return err
				}
			}

			params.Logger.InfoContext(ctx, "MongoDB connected", slog.String("database", db.Name()))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique email index and the session expiry index.
// MongoDB's TTL monitor removes sessions once expires_at has passed.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return errors.Wrap(err, "failed to create users email index")
	}

	if _, err := db.Collection(sessionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}); err != nil {
		return errors.Wrap(err, "failed to create sessions expiry index")
	}

	if _, err := db.Collection(filesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner_id", Value: 1},
			{Key: "parent_id", Value: 1},
			{Key: "created_at", Value: 1},
		},
	}); err != nil {
		return errors.Wrap(err, "failed to create files listing index")
	}

	return nil
}

func connectionURI(cfg *config.MongoConfig) string {
	if cfg == nil {
		return "mongodb://" + net.JoinHostPort(defaultHost, defaultPort)
	}
	if cfg.URI != "" {
		return cfg.URI
	}

	host := cfg.Host
	if host == "" {
		host = defaultHost
	}
	port := cfg.Port
	if port == "" {
		port = defaultPort
	}

	return "mongodb://" + net.JoinHostPort(host, port)
}

func databaseName(cfg *config.MongoConfig) string {
	if cfg == nil || cfg.Database == "" {
		return defaultDatabase
	}

	return cfg.Database
}
