// Package mongodb contains the account store backed by a MongoDB collection.
package mongodb

import (
	"context"
	"log/slog"

	"pizarra/config"
	"pizarra/internal/domain/lifecycle"
	"pizarra/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const usernameIndexName = "username_unique"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the accounts collection. Reachability and the
// unique username index are checked when the application starts.
func New(params Params) (*mongo.Collection, error) {
	mongoCfg := params.Config.Mongo
	if mongoCfg == nil || mongoCfg.URI == "" {
		return nil, errors.New("mongo uri is not configured")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoCfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collection := client.Database(mongoCfg.Database).Collection(mongoCfg.Collection)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, collection); err != nil {
				return err
			}

			params.Logger.Info("MongoDB account collection ready",
				slog.String("database", mongoCfg.Database),
				slog.String("collection", mongoCfg.Collection),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return collection, nil
}

// EnsureIndexes creates the unique username index that makes registration atomic.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(usernameIndexName),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create username index")
	}

	return nil
}
