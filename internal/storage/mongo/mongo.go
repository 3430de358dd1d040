package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"uniprofile/internal/config"
	"uniprofile/pkg/e"
)

// Mongo is the optional diagnostics data store. The rest of the service
// never depends on it; callers must tolerate a nil handle.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongo(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Mongo, error) {
	if !cfg.DatabaseConfigured() {
		return nil, e.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.ProbeTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, e.Wrap("storage.mongo.NewMongo.Connect", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("Failed to ping Mongo", slog.String("error", err.Error()))
		if derr := client.Disconnect(context.Background()); derr != nil {
			logger.Error("Mongo disconnect after failed ping", slog.String("error", derr.Error()))
		}
		return nil, e.Wrap("storage.mongo.NewMongo.Ping", err)
	}
	logger.Info("Connected to Mongo successfully",
		slog.String("database", cfg.Mongo.Database))

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}, nil
}

func (m *Mongo) Name() string {
	return m.db.Name()
}

func (m *Mongo) ListCollections(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, e.WrapError(ctx, "storage.mongo.ListCollections", err)
	}
	return names, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
