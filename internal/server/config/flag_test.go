package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		name string
		args []string
		want func(*Config)
	}{
		{
			name: "no flags keeps defaults",
			args: []string{"cmd"},
			want: func(c *Config) {},
		},
		{
			name: "endpoint address",
			args: []string{"cmd", "-a", ":9090"},
			want: func(c *Config) { c.EndpointAddr = ":9090" },
		},
		{
			name: "database dsn",
			args: []string{"cmd", "-d", "postgres://u:p@db:5432/other"},
			want: func(c *Config) { c.DatabaseDSN = "postgres://u:p@db:5432/other" },
		},
		{
			name: "s3 settings",
			args: []string{"cmd", "-u", "root", "-p", "pw", "-b", "files", "-g", "eu-west-1", "-e", "http://minio:9000/"},
			want: func(c *Config) {
				c.S3RootUser = "root"
				c.S3RootPassword = "pw"
				c.S3Bucket = "files"
				c.S3Region = "eu-west-1"
				c.S3BaseEndpoint = "http://minio:9000/"
			},
		},
		{
			name: "public base url and upload limit",
			args: []string{"cmd", "-l", "https://cdn.example.com", "-m", "1048576"},
			want: func(c *Config) {
				c.S3PublicBaseURL = "https://cdn.example.com"
				c.MaxUploadSize = 1048576
			},
		},
		{
			name: "unknown flags ignored",
			args: []string{"cmd", "-z", "whatever", "-a", ":7070"},
			want: func(c *Config) { c.EndpointAddr = ":7070" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			want := &Config{}
			want.LoadDefaults()
			tt.want(want)

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, want, cfg)
		})
	}
}
