package config

import "testing"

func TestLoadDebug(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		debug string
		want  bool
	}{
		{name: "dev defaults to debug", env: "dev", want: true},
		{name: "prod defaults quiet", env: "prod", want: false},
		{name: "explicit override wins in prod", env: "prod", debug: "true", want: true},
		{name: "explicit override wins in dev", env: "dev", debug: "false", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.env)
			t.Setenv("DEBUG", tt.debug)

			cfg := Load()
			if cfg.Debug != tt.want {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.want)
			}
		})
	}
}

func TestLoadTablePrefix(t *testing.T) {
	tests := []struct {
		env    string
		prefix string
		want   string
	}{
		{env: "dev", want: "dev_"},
		{env: "test", want: "test_"},
		{env: "prod", want: "prod_"},
		{env: "prod", prefix: "custom_", want: "custom_"},
	}

	for _, tt := range tests {
		t.Setenv("ENVIRONMENT", tt.env)
		t.Setenv("TABLE_PREFIX", tt.prefix)

		cfg := Load()
		if cfg.TablePrefix != tt.want {
			t.Errorf("env %q prefix %q: TablePrefix = %q, want %q", tt.env, tt.prefix, cfg.TablePrefix, tt.want)
		}
	}
}
