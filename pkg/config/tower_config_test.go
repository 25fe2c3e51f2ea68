package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dochi486/ZombieDefence/pkg/tower"
)

func TestDefaultTowerConfigIsValid(t *testing.T) {
	cfg := DefaultTowerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// 默认参数
	if cfg.Climber.JumpTime != 0.4 {
		t.Errorf("expected jumpTime = 0.4, got %f", cfg.Climber.JumpTime)
	}
	if cfg.Layout.PerRow != 5 {
		t.Errorf("expected perRow = 5, got %d", cfg.Layout.PerRow)
	}
	if cfg.Spawner.Interval != 1.5 {
		t.Errorf("expected spawn interval = 1.5, got %f", cfg.Spawner.Interval)
	}
}

func TestLoadTowerConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		wantErrIs   error
		errContains string
		validate    func(*testing.T, *TowerConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
seed: 42
climber:
  jumpProbability: 0.5
layout:
  perRow: 3
anchor:
  path:
    - [0, 0.6]
    - [-2, 0.6]
`,
			validate: func(t *testing.T, cfg *TowerConfig) {
				if cfg.Seed != 42 {
					t.Errorf("expected seed = 42, got %d", cfg.Seed)
				}
				if cfg.Climber.JumpProbability != 0.5 {
					t.Errorf("expected jumpProbability = 0.5, got %f", cfg.Climber.JumpProbability)
				}
				// 未配置的字段使用默认值
				if cfg.Climber.JumpTime != 0.4 {
					t.Errorf("expected default jumpTime = 0.4, got %f", cfg.Climber.JumpTime)
				}
				if cfg.Layout.PerRow != 3 || cfg.Layout.RowHeight != 0.8 {
					t.Errorf("unexpected layout %+v", cfg.Layout)
				}
				if len(cfg.Anchor.Path) != 2 || cfg.Anchor.Path[1][0] != -2 {
					t.Errorf("unexpected anchor path %v", cfg.Anchor.Path)
				}
			},
		},
		{
			name: "zero jump time",
			yamlContent: `
climber:
  jumpTime: 0
`,
			wantErr:   true,
			wantErrIs: tower.ErrInvalidDuration,
		},
		{
			name: "negative gravity",
			yamlContent: `
climber:
  gravity: -9.8
`,
			wantErr:   true,
			wantErrIs: tower.ErrInvalidGravity,
		},
		{
			name: "invalid layout",
			yamlContent: `
layout:
  perRow: 0
`,
			wantErr:   true,
			wantErrIs: tower.ErrInvalidLayout,
		},
		{
			name: "probability out of range",
			yamlContent: `
climber:
  jumpProbability: 1.5
`,
			wantErr:     true,
			errContains: "jumpProbability",
		},
		{
			name:        "malformed yaml",
			yamlContent: "climber: [1, 2",
			wantErr:     true,
			errContains: "failed to parse tower config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tower.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg, err := LoadTowerConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Errorf("expected error wrapping %v, got %v", tt.wantErrIs, err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadTowerConfig_MissingFile(t *testing.T) {
	_, err := LoadTowerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read tower config") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestShippedTowerConfig(t *testing.T) {
	cfg, err := LoadTowerConfig("../../data/tower.yaml")
	if err != nil {
		t.Fatalf("data/tower.yaml should load: %v", err)
	}
	if len(cfg.Anchor.Path) == 0 {
		t.Error("shipped config should define an anchor patrol path")
	}
	layout := cfg.TowerLayout()
	if layout.PerRow != cfg.Layout.PerRow || layout.RowHeight != cfg.Layout.RowHeight {
		t.Errorf("TowerLayout mismatch: %+v vs %+v", layout, cfg.Layout)
	}
}
