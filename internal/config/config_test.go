package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gateprobe/gateprobe/internal/persister"
	"github.com/gateprobe/gateprobe/internal/prober"
	"github.com/google/go-cmp/cmp"
	homedir "github.com/mitchellh/go-homedir"
)

func TestReadConfig(t *testing.T) {
	config, err := ReadConfig("testdata/valid-config.json")
	if err != nil {
		t.Fatal(err)
	}
	expect := &Config{
		Comment:      "gateprobe configuration",
		ListURL:      "http://127.0.0.1:8080/api/iphone/",
		UserAgent:    New().UserAgent,
		FetchTimeout: 30,
		ProbeTimeout: 3,
		Parallelism:  16,
		OutputDir:    "/tmp/gateprobe",
		Extension:    persister.DefaultExtension,
		StartDelay:   -1,
		path:         "testdata/valid-config.json",
	}
	if diff := cmp.Diff(expect, config, cmp.AllowUnexported(Config{})); diff != "" {
		t.Fatal(diff)
	}
	if config.Path() != "testdata/valid-config.json" {
		t.Fatal("unexpected path", config.Path())
	}
	if config.ProbeTimeoutDuration() != 3*time.Second {
		t.Fatal("unexpected probe timeout")
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "nonexistent.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("unexpected error", err)
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("with empty object", func(t *testing.T) {
		config, err := ParseConfig([]byte("{}"))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(New(), config, cmp.AllowUnexported(Config{})); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with invalid json", func(t *testing.T) {
		if _, err := ParseConfig([]byte("{")); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("with wrong types", func(t *testing.T) {
		if _, err := ParseConfig([]byte(`{"parallelism": "many"}`)); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("with negative timeout", func(t *testing.T) {
		_, err := ParseConfig([]byte(`{"fetch_timeout": -5}`))
		if !errors.Is(err, ErrInvalidTimeout) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("with negative parallelism", func(t *testing.T) {
		_, err := ParseConfig([]byte(`{"parallelism": -5}`))
		if !errors.Is(err, ErrInvalidParallelism) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestNew(t *testing.T) {
	c := New()
	if c.ListURL != DefaultListURL {
		t.Fatal("unexpected list URL")
	}
	if c.FetchTimeoutDuration() != 30*time.Second {
		t.Fatal("unexpected fetch timeout")
	}
	if c.ProbeTimeoutDuration() != prober.DefaultTimeout {
		t.Fatal("unexpected probe timeout")
	}
	if c.Parallelism != prober.DefaultParallelism() {
		t.Fatal("unexpected parallelism")
	}
	if c.OutputDir != persister.DefaultDir || c.Extension != persister.DefaultExtension {
		t.Fatal("unexpected output settings")
	}
	if c.StartDelay != DefaultStartDelay {
		t.Fatal("unexpected start delay")
	}
	if c.Path() != "" {
		t.Fatal("expected empty path")
	}
}

func TestReadDefaultConfigPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	t.Run("without a config file", func(t *testing.T) {
		config, err := ReadDefaultConfigPaths()
		if err != nil {
			t.Fatal(err)
		}
		if config.Path() != "" {
			t.Fatal("expected the default config")
		}
	})

	t.Run("with a config file", func(t *testing.T) {
		path := filepath.Join(home, ".gateprobe", "config.json")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(`{"parallelism": 7}`), 0644); err != nil {
			t.Fatal(err)
		}
		config, err := ReadDefaultConfigPaths()
		if err != nil {
			t.Fatal(err)
		}
		if config.Parallelism != 7 || config.Path() != path {
			t.Fatalf("unexpected config %+v", config)
		}
	})
}
