package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := ProjectType(); got != "fullstack" {
		t.Errorf("ProjectType() = %q, want %q", got, "fullstack")
	}
	if got := Tools(); got != "all" {
		t.Errorf("Tools() = %q, want %q", got, "all")
	}
	if got := LogLevel(); got != "warn" {
		t.Errorf("LogLevel() = %q, want %q", got, "warn")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("WBAGENT_LOG_LEVEL", "debug")
	t.Setenv("WBAGENT_PROJECT_TYPE", "web_saas")
	Load()

	if got := LogLevel(); got != "debug" {
		t.Errorf("LogLevel() = %q, want %q", got, "debug")
	}
	if got := ProjectType(); got != "web_saas" {
		t.Errorf("ProjectType() = %q, want %q", got, "web_saas")
	}
}

func TestSet_WritesFile(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyProjectType, "mobile_app"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	path := filepath.Join(home, ".wb-agent", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), "mobile_app") {
		t.Errorf("config file missing value, got:\n%s", data)
	}
	if got := Get(KeyProjectType); got != "mobile_app" {
		t.Errorf("Get(project_type) = %q, want %q", got, "mobile_app")
	}
}
