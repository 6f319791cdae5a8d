package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Cols != defaultCols || cfg.App.Rows != defaultRows {
		t.Fatalf("expected %dx%d, got %dx%d", defaultCols, defaultRows, cfg.App.Cols, cfg.App.Rows)
	}
	if cfg.App.ShowFooter || cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected all boolean options off by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"LCDMENU_COLS=40", "LCDMENU_ROWS=2", "LCDMENU_TRACE=1"}
	cfg, err := LoadArgs([]string{"-cols", "16", "-footer"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Cols != 16 {
		t.Fatalf("flag should override env: got cols=%d", cfg.App.Cols)
	}
	if cfg.App.Rows != 2 {
		t.Fatalf("env fallback lost: got rows=%d", cfg.App.Rows)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled from flag")
	}
}

func TestLoadArgsBadEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"LCDMENU_COLS=banana", "LCDMENU_VERBOSE=nope"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Cols != defaultCols {
		t.Fatalf("malformed env should fall back: got cols=%d", cfg.App.Cols)
	}
	if cfg.App.Verbose {
		t.Fatalf("malformed boolean env should fall back to false")
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.App.Cols = 4
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for narrow display")
	}

	cfg.App.Cols = defaultCols
	cfg.App.Rows = 0
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for zero rows")
	}
}

func TestFlagsSnapshot(t *testing.T) {
	cfg, err := LoadArgs([]string{"-rows", "6"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Flags["rows"] != "6" {
		t.Fatalf("expected rows snapshot 6, got %q", cfg.Flags["rows"])
	}
}
