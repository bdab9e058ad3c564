package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xyproto/env/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unrollgen.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// setenv sets an environment variable and refreshes the env package's
// process-environment cache, which is populated lazily on first read and
// would otherwise never observe values set after an earlier test's
// buildConfig call. The cleanup drops the cache again so later tests see
// the restored environment.
func setenv(t *testing.T, key, value string) {
	t.Helper()
	t.Setenv(key, value)
	env.Load()
	t.Cleanup(env.Unload)
}

func TestBuildConfigDefaults(t *testing.T) {
	cfg, err := buildConfig("", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package != "unroll" {
		t.Errorf("got package %q, want %q", cfg.Package, "unroll")
	}
	if cfg.BoundsArity != 8 {
		t.Errorf("got bounds arity %d, want 8", cfg.BoundsArity)
	}
}

func TestBuildConfigFromFile(t *testing.T) {
	path := writeConfig(t, "package: seqops\narities:\n  map: 24\n")
	cfg, err := buildConfig(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package != "seqops" {
		t.Errorf("got package %q, want %q", cfg.Package, "seqops")
	}
	if got := cfg.Arities["map"]; got != 24 {
		t.Errorf("got map arity %d, want 24", got)
	}
}

func TestBuildConfigPackageOverride(t *testing.T) {
	path := writeConfig(t, "package: seqops\n")
	cfg, err := buildConfig(path, "custom")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package != "custom" {
		t.Errorf("got package %q, want %q", cfg.Package, "custom")
	}
}

func TestBuildConfigEnvRelaxation(t *testing.T) {
	// Prime the env cache before overriding: values set after the first
	// read are invisible without the helper's reload.
	if _, err := buildConfig("", ""); err != nil {
		t.Fatal(err)
	}
	setenv(t, "UNROLLGEN_MAX_ARITY", "32")
	cfg, err := buildConfig("", "")
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Arities["map"]; got != 32 {
		t.Errorf("got map arity %d, want 32", got)
	}
	if got := cfg.Arities["reduce"]; got != 32 {
		t.Errorf("got reduce arity %d, want 32", got)
	}
}

func TestBuildConfigEnvNeverLowers(t *testing.T) {
	setenv(t, "UNROLLGEN_MAX_ARITY", "4")
	path := writeConfig(t, "arities:\n  map: 24\n")
	cfg, err := buildConfig(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Arities["map"]; got != 24 {
		t.Errorf("got map arity %d, want 24", got)
	}
}

func TestBuildConfigBadFile(t *testing.T) {
	path := writeConfig(t, "not_a_field: true\n")
	if _, err := buildConfig(path, ""); err == nil {
		t.Fatal("want error for unknown config field")
	}
}
