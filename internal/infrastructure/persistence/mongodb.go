package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoSettings describes the booking store connection
type MongoSettings struct {
	URI            string
	Database       string
	Username       string
	Password       string
	AppName        string
	MaxPoolSize    uint64
	MinPoolSize    uint64
	ConnectTimeout time.Duration
}

// ClientOptions builds driver options. Credentials are only set when both
// parts are present so URIs that embed them keep working.
func (s MongoSettings) ClientOptions() *options.ClientOptions {
	opts := options.Client().ApplyURI(s.URI)

	if s.Username != "" && s.Password != "" {
		opts.SetAuth(options.Credential{
			Username: s.Username,
			Password: s.Password,
		})
	}
	if s.AppName != "" {
		opts.SetAppName(s.AppName)
	}
	if s.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(s.MaxPoolSize)
	}
	if s.MinPoolSize > 0 && (s.MaxPoolSize == 0 || s.MinPoolSize <= s.MaxPoolSize) {
		opts.SetMinPoolSize(s.MinPoolSize)
	}
	opts.SetServerSelectionTimeout(s.connectTimeout())

	return opts
}

func (s MongoSettings) connectTimeout() time.Duration {
	if s.ConnectTimeout <= 0 {
		return 10 * time.Second
	}
	return s.ConnectTimeout
}

// NewMongoDatabase connects, pings the primary and returns the booking
// database together with its client for shutdown
func NewMongoDatabase(ctx context.Context, s MongoSettings) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, s.connectTimeout())
	defer cancel()

	client, err := mongo.Connect(ctx, s.ClientOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, client.Database(s.Database), nil
}
