package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "go-task-keeper", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 300*time.Second, cfg.Storage.Cache.TTL)
	assert.Equal(t, 5*time.Second, cfg.Storage.Cache.ConnectTimeout)
}

func TestApplyDefaults_DoesNotOverrideSetValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:    App{TokenIssuer: "custom-issuer", TokenDuration: time.Hour},
		Server: Server{HTTPAddress: ":9090"},
		Storage: Storage{
			Cache: Cache{TTL: time.Minute},
		},
	}
	cfg.applyDefaults()

	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "custom-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, time.Minute, cfg.Storage.Cache.TTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			"valid",
			StructuredConfig{
				App:     App{TokenSignKey: "key"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/tasks"}},
			},
			nil,
		},
		{
			"missing DSN",
			StructuredConfig{App: App{TokenSignKey: "key"}},
			ErrInvalidStorageConfigs,
		},
		{
			"missing sign key",
			StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/tasks"}}},
			ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{"host and port", "localhost:8080", NetAddress{Host: "localhost", Port: 8080}, false},
		{"ip and port", "127.0.0.1:9090", NetAddress{Host: "127.0.0.1", Port: 9090}, false},
		{"port only", ":8080", NetAddress{Host: "", Port: 8080}, false},
		{"no colon", "8080", NetAddress{}, true},
		{"bad port", "localhost:abc", NetAddress{}, true},
		{"negative port", "localhost:-1", NetAddress{}, true},
		{"bad host", "not-an-ip:8080", NetAddress{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/tasks")
	t.Setenv("STORAGE_CACHE_ADDR", "localhost:6379")
	t.Setenv("STORAGE_CACHE_TTL", "120s")
	t.Setenv("SERVER_ADDRESS", ":3000")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://env/tasks", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Cache.Addr)
	assert.Equal(t, 120*time.Second, cfg.Storage.Cache.TTL)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
}
