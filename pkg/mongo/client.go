package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// New connects to MongoDB, retrying per the config before giving up.
// Each attempt is verified with a ping so a half-open connection never
// escapes into the service. Extra client options, such as a custom bson
// registry, are applied on top of the config.
func New(ctx context.Context, cfg Config, extra ...*options.ClientOptions) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)

	all := append([]*options.ClientOptions{opts}, extra...)

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		client, err := mongo.Connect(all...)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToConnect
}

// NewDatabase connects and returns the database named in the config.
func NewDatabase(ctx context.Context, cfg Config, extra ...*options.ClientOptions) (*mongo.Database, error) {
	client, err := New(ctx, cfg, extra...)
	if err != nil {
		return nil, err
	}
	return client.Database(cfg.Database), nil
}
