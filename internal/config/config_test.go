package config

import "testing"

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load([]byte("{}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.DSN != "catalog.db" {
		t.Fatalf("expected default dsn, got %q", cfg.Database.DSN)
	}
	if cfg.Storage.DefaultTier != DefaultTier {
		t.Fatalf("expected default tier %q, got %q", DefaultTier, cfg.Storage.DefaultTier)
	}
}

func TestLoadParsesTiers(t *testing.T) {
	data := []byte(`
database:
  dsn: lab.db
  debug: true
storage:
  default_tier: locker
  tiers:
    locker:
      local_root: /mnt/locker
      global_root: /server/locker
`)
	cfg, err := Load(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.DSN != "lab.db" || !cfg.Database.Debug {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}

	tier, err := cfg.Tier("locker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tier.LocalRoot != "/mnt/locker" || tier.GlobalRoot != "/server/locker" {
		t.Fatalf("unexpected tier config: %+v", tier)
	}

	if _, err := cfg.Tier("archive"); err == nil {
		t.Fatalf("expected error for unknown tier")
	}
}

func TestLoadRejectsIncompleteTier(t *testing.T) {
	data := []byte(`
storage:
  tiers:
    locker:
      local_root: /mnt/locker
`)
	if _, err := Load(data); err == nil {
		t.Fatalf("expected error for tier without global_root")
	}
}
