// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/store/oauthstate"
)

// ConnectDB establishes the MongoDB connection and bundles it into DBDeps.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MuseumHubMongoClient:   client,
		MuseumHubMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the queries and subscriptions rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MuseumHubMongoDatabase

	indexes := map[string][]mongo.IndexModel{
		"ideas": {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		"comments": {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "idea_id", Value: 1}}},
		},
		"bookmarks": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "course_id", Value: 1}}},
		},
		"suggestions": {
			{Keys: bson.D{{Key: "author_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			logger.Error("index creation failed", zap.String("collection", coll), zap.Error(err))
			return err
		}
	}

	// One-time-use OAuth state records: unique state plus TTL expiry.
	if err := oauthstate.New(db).EnsureIndexes(ctx); err != nil {
		logger.Error("oauth state index creation failed", zap.Error(err))
		return err
	}

	logger.Info("indexes ensured")
	return nil
}
