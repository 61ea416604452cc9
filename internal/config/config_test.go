package config

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, c Config)
	}{
		{"files only", []string{"a.png", "b.jpg"}, func(t *testing.T, c Config) {
			if len(c.Files) != 2 || c.Files[0] != "a.png" || c.Files[1] != "b.jpg" {
				t.Errorf("Files = %v", c.Files)
			}
			if c.Quality != DefaultQuality || c.KeepOriginal || c.OutputBase != "" {
				t.Errorf("defaults changed: %+v", c)
			}
		}},
		{"short flags", []string{"-o", "img", "-k", "-q", "40", "a.png"}, func(t *testing.T, c Config) {
			if c.OutputBase != "img" || !c.KeepOriginal || c.Quality != 40 {
				t.Errorf("got OutputBase=%q KeepOriginal=%v Quality=%g", c.OutputBase, c.KeepOriginal, c.Quality)
			}
		}},
		{"long flags", []string{"--output=img", "--keep-original", "--quality", "90.5", "a.png"}, func(t *testing.T, c Config) {
			if c.OutputBase != "img" || !c.KeepOriginal || c.Quality != 90.5 {
				t.Errorf("got OutputBase=%q KeepOriginal=%v Quality=%g", c.OutputBase, c.KeepOriginal, c.Quality)
			}
		}},
		{"flags after files", []string{"a.png", "b.png", "-k", "-q", "10"}, func(t *testing.T, c Config) {
			if len(c.Files) != 2 || !c.KeepOriginal || c.Quality != 10 {
				t.Errorf("got Files=%v KeepOriginal=%v Quality=%g", c.Files, c.KeepOriginal, c.Quality)
			}
		}},
		{"double dash ends flags", []string{"--", "-weird.png"}, func(t *testing.T, c Config) {
			if len(c.Files) != 1 || c.Files[0] != "-weird.png" {
				t.Errorf("Files = %v", c.Files)
			}
		}},
		{"no-color wins over color", []string{"--color", "--no-color"}, func(t *testing.T, c Config) {
			if c.ColorMode != ColorNever {
				t.Errorf("ColorMode = %q, want never", c.ColorMode)
			}
		}},
		{"color", []string{"--color"}, func(t *testing.T, c Config) {
			if c.ColorMode != ColorAlways {
				t.Errorf("ColorMode = %q, want always", c.ColorMode)
			}
		}},
		{"utility flags", []string{"-v", "-h", "-c"}, func(t *testing.T, c Config) {
			if !c.ShowVersion || !c.ShowHelp || !c.CheckOnly {
				t.Errorf("ShowVersion=%v ShowHelp=%v CheckOnly=%v", c.ShowVersion, c.ShowHelp, c.CheckOnly)
			}
		}},
		{"workers force dry-run", []string{"-j", "3", "-f", "-n", "x.png"}, func(t *testing.T, c Config) {
			if c.Workers != 3 || !c.Force || !c.DryRun {
				t.Errorf("Workers=%d Force=%v DryRun=%v", c.Workers, c.Force, c.DryRun)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ParseFlags(&cfg, tt.args); err != nil {
				t.Fatalf("ParseFlags(%v): %v", tt.args, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing output value", []string{"a.png", "-o"}},
		{"missing quality value", []string{"a.png", "-q"}},
		{"non-numeric quality", []string{"-q", "high", "a.png"}},
		{"unknown flag", []string{"--turbo", "a.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ParseFlags(&cfg, tt.args)
			if err == nil {
				t.Fatal("ParseFlags() succeeded, want error")
			}
			if !IsConfigError(err) {
				t.Errorf("error %v is not a ConfigError", err)
			}
		})
	}
}

func TestValidate_Quality(t *testing.T) {
	tests := []struct {
		name    string
		q       float32
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -5, true},
		{"lower bound", 1, false},
		{"default", DefaultQuality, false},
		{"fractional", 42.5, false},
		{"upper bound", 100, false},
		{"above range", 100.5, true},
		{"NaN", float32(math.NaN()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Files = []string{"a.png"}
			cfg.Quality = tt.q
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var ce *ConfigError
			if err != nil && (!errors.As(err, &ce) || ce.Field != "quality") {
				t.Errorf("error = %#v, want ConfigError on quality", err)
			}
		})
	}
}

func TestValidate_OutputBase(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{"empty means random", "", false},
		{"plain name", "img", false},
		{"name with dot", "holiday.2024", false},
		{"path", "out/img", true},
		{"parent", "..", true},
		{"blank", "   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Files = []string{"a.png"}
			cfg.OutputBase = tt.base
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresFiles(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); !IsConfigError(err) {
		t.Errorf("Validate() with no files = %v, want ConfigError", err)
	}
	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() in check mode = %v, want nil", err)
	}
}

func TestValidate_Workers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Files = []string{"a.png"}
	cfg.Workers = -1
	if err := cfg.Validate(); !IsConfigError(err) {
		t.Errorf("Validate() with negative workers = %v, want ConfigError", err)
	}
}

func TestValidate_ColorMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	cfg.ColorMode = "rainbow"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted unknown color mode")
	}
}

func TestRequest_IsACopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Files = []string{"a.png", "b.png"}
	cfg.OutputBase = "img"
	cfg.KeepOriginal = true
	cfg.Quality = 55

	req := cfg.Request()
	cfg.Files[0] = "changed.png"
	cfg.Quality = 1

	if req.Files[0] != "a.png" || req.Quality != 55 || req.OutputBase != "img" || !req.KeepOriginal {
		t.Errorf("Request changed with Config: %+v", req)
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Quality != 75 {
		t.Errorf("default Quality = %g, want 75", cfg.Quality)
	}
	if cfg.KeepOriginal {
		t.Error("default KeepOriginal should be false")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want auto", cfg.ColorMode)
	}
	if cfg.Workers != 0 || cfg.DryRun || cfg.Force {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, "1.2.3")
	out := buf.String()
	for _, want := range []string{"webpix v1.2.3", "--keep-original", "--quality", "--output"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
