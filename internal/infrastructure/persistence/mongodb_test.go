package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoSettings_ClientOptions(t *testing.T) {
	opts := MongoSettings{
		URI:         "mongodb://localhost:27017",
		Username:    "recharge",
		Password:    "secret",
		AppName:     "recharge-travels",
		MaxPoolSize: 50,
		MinPoolSize: 5,
	}.ClientOptions()

	require.NotNil(t, opts.AppName)
	assert.Equal(t, "recharge-travels", *opts.AppName)
	require.NotNil(t, opts.MaxPoolSize)
	assert.Equal(t, uint64(50), *opts.MaxPoolSize)
	require.NotNil(t, opts.MinPoolSize)
	assert.Equal(t, uint64(5), *opts.MinPoolSize)
	require.NotNil(t, opts.Auth)
	assert.Equal(t, "recharge", opts.Auth.Username)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, 10*time.Second, *opts.ServerSelectionTimeout)
}

func TestMongoSettings_ClientOptionsDefaults(t *testing.T) {
	opts := MongoSettings{
		URI:            "mongodb://localhost:27017",
		Username:       "recharge",
		MinPoolSize:    20,
		MaxPoolSize:    10,
		ConnectTimeout: 3 * time.Second,
	}.ClientOptions()

	assert.Nil(t, opts.Auth, "a username without password is ignored")
	assert.Nil(t, opts.AppName)
	assert.Nil(t, opts.MinPoolSize, "a minimum above the maximum is ignored")
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, 3*time.Second, *opts.ServerSelectionTimeout)
}
