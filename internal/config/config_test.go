package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/merge_request_service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "exec", cfg.Interdiff.Backend)
	assert.Equal(t, int64(4), cfg.Interdiff.MaxConcurrent)
	assert.Equal(t, "dry", cfg.Integration.Mode)
	assert.False(t, cfg.UsesPostgres())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mrservice.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = "9000"

[database]
host = "db"
user = "mr"
password = "secret"
dbname = "merge_requests"

[interdiff]
backend = "line"

[integration]
mode = "git"
workdir = "/srv/repo"
`), 0o644))

	t.Setenv("MRS_SERVER_PORT", "9100")
	t.Setenv("MRS_INTERDIFF_MAX_CONCURRENT", "8")
	t.Setenv("MRS_INTEGRATION_GITLAB_PROJECT", "group/app")
	t.Setenv("MRS_INTEGRATION_GITLAB_TOKEN", "token")
	t.Setenv("MRS_LOG_PRETTY", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "line", cfg.Interdiff.Backend)
	assert.Equal(t, int64(8), cfg.Interdiff.MaxConcurrent)
	assert.Equal(t, "group/app", cfg.Integration.GitLabProject)
	assert.Equal(t, "/srv/repo", cfg.Integration.Workdir)
	assert.True(t, cfg.Log.Pretty)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "host=db port=5432 user=mr password=secret dbname=merge_requests sslmode=disable", cfg.Database.DSN())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg, err := config.Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "postgres without user",
			mutate:  func(c *config.Config) { c.Database.Host = "db"; c.Database.DBName = "x" },
			wantErr: "database.user is required",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *config.Config) { c.Interdiff.Backend = "magic" },
			wantErr: "interdiff.backend",
		},
		{
			name:    "git mode without workdir",
			mutate:  func(c *config.Config) { c.Integration.Mode = "git" },
			wantErr: "integration.workdir is required",
		},
		{
			name: "gitlab project without token",
			mutate: func(c *config.Config) {
				c.Integration.Mode = "git"
				c.Integration.Workdir = "/repo"
				c.Integration.GitLabProject = "42"
			},
			wantErr: "integration.gitlab_token is required",
		},
		{
			name:    "unknown mode",
			mutate:  func(c *config.Config) { c.Integration.Mode = "svn" },
			wantErr: "integration.mode",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *config.Config) { c.Interdiff.MaxConcurrent = 0 },
			wantErr: "max_concurrent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
