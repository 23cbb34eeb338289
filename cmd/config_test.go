package cmd_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifecycle/cmd"
)

func TestConfig_WithDefaults(t *testing.T) {
	c := cmd.Config{HTTPPort: "9090"}.WithDefaults()

	assert.Equal(t, "9090", c.HTTPPort)
	assert.Equal(t, "disable", c.DBSslMode)
	assert.Equal(t, "v1", c.BucketMappingVersion)
	assert.Empty(t, c.ReportSchedule)
}

func TestConfig_DSN(t *testing.T) {
	c := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "lifecycle",
		DBSslMode:  "require",
	}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=lifecycle sslmode=require", c.DSN())
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level, err := cmd.Config{LogLevel: tt.in}.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}

	_, err := cmd.Config{LogLevel: "loud"}.SlogLevel()
	require.Error(t, err)
}

func TestNewCompositionRoot_RejectsUnknownBucketMapping(t *testing.T) {
	_, err := cmd.NewCompositionRoot(cmd.Config{BucketMappingVersion: "v9"}, nil)

	require.Error(t, err)
}

func TestNewCompositionRoot_RejectsInvalidCurrency(t *testing.T) {
	_, err := cmd.NewCompositionRoot(cmd.Config{BucketMappingVersion: "v1", DefaultCurrency: "rupee"}, nil)

	require.Error(t, err)
}

func TestNewCompositionRoot_BuildsServer(t *testing.T) {
	root, err := cmd.NewCompositionRoot(cmd.Config{BucketMappingVersion: "v1", DefaultCurrency: "USD"}, nil)
	require.NoError(t, err)

	assert.NotNil(t, root.CreateHTTPServer())
}
