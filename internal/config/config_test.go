package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() failed validation: %v", err)
	}
}

func TestLoadFromBytesOverridesOnlyGivenFields(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("server:\n  port: 8080\n"))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Export.CellSize != Default().Export.CellSize {
		t.Errorf("Export.CellSize = %d, want default %d", cfg.Export.CellSize, Default().Export.CellSize)
	}
}

func TestLoadFromBytesRejectsMalformedYAML(t *testing.T) {
	if _, err := LoadFromBytes([]byte("server: [this is not a map")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadFromBytesRejectsInvalidPort(t *testing.T) {
	_, err := LoadFromBytes([]byte("server:\n  port: 70000\n"))
	if err == nil {
		t.Fatal("expected an error for an out-of-range port")
	}
}

func TestLoadFromBytesRejectsEmptyOrigins(t *testing.T) {
	_, err := LoadFromBytes([]byte("server:\n  allowedOrigins: []\n"))
	if err == nil {
		t.Fatal("expected an error for an empty allowedOrigins list")
	}
}

func TestLoadFromBytesRejectsInvalidStoneRatio(t *testing.T) {
	_, err := LoadFromBytes([]byte("export:\n  stoneRatio: 1.5\n"))
	if err == nil {
		t.Fatal("expected an error for an out-of-range stoneRatio")
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load("/nonexistent/path/seiti.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
