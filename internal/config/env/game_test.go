package env

import (
	"mini_casino/internal/engine/plinko"
	"mini_casino/internal/engine/slot"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestNewGameConfigDefaults(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML() error = %v", err)
	}
	if cfg.SlotRules() != slot.DefaultRules() {
		t.Errorf("slot rules = %+v, want defaults", cfg.SlotRules())
	}
	if !reflect.DeepEqual(cfg.PlinkoRules(), plinko.DefaultRules()) {
		t.Errorf("plinko rules = %+v, want defaults", cfg.PlinkoRules())
	}
	if cfg.LedgerCapacity() != 50 {
		t.Errorf("ledger capacity = %d, want 50", cfg.LedgerCapacity())
	}
	if len(cfg.SlotIcons()) != 9 {
		t.Errorf("icons = %d, want 9", len(cfg.SlotIcons()))
	}
}

func TestNewGameConfigOverrides(t *testing.T) {
	doc := []byte(`
slot:
  bet: 0
  three_of_a_kind: 250
  time_per_icon: 50ms
plinko:
  board_size: 600
  zone_payouts: [10, 2, 0, 2, 10]
ledger_capacity: 20
`)
	cfg, err := NewGameConfig(doc)
	if err != nil {
		t.Fatalf("NewGameConfig() error = %v", err)
	}

	rules := cfg.SlotRules()
	if rules.Bet != 0 || rules.ThreeOfAKind != 250 || rules.TwoAdjacent != 50 {
		t.Errorf("slot rules = %+v, want bet 0, three 250, two 50", rules)
	}
	if cfg.SlotTiming().PerIcon != 50*time.Millisecond || cfg.SlotTiming().Stagger != 150*time.Millisecond {
		t.Errorf("slot timing = %+v", cfg.SlotTiming())
	}
	if cfg.PlinkoBoardSize() != 600 {
		t.Errorf("board size = %f, want 600", cfg.PlinkoBoardSize())
	}
	if got := cfg.PlinkoRules().ZonePayouts; !reflect.DeepEqual(got, []int{10, 2, 0, 2, 10}) {
		t.Errorf("zone payouts = %v", got)
	}
	if cfg.PlinkoLayout() != plinko.DefaultLayout() {
		t.Errorf("layout = %+v, want default", cfg.PlinkoLayout())
	}
	if cfg.LedgerCapacity() != 20 {
		t.Errorf("ledger capacity = %d, want 20", cfg.LedgerCapacity())
	}
}

func TestNewGameConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative bet", "slot:\n  bet: -5\n"},
		{"single icon", "slot:\n  icons: [Seven]\n"},
		{"negative zone", "plinko:\n  zone_payouts: [1, -1, 1]\n"},
		{"not yaml", "slot: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGameConfig([]byte(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
