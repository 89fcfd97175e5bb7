package env

import (
	"errors"
	"fmt"
	"mini_casino/internal/config"
	"mini_casino/internal/engine/plinko"
	"mini_casino/internal/engine/slot"
	"mini_casino/internal/ledger"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type gameYAML struct {
	Slot struct {
		Icons        []string      `yaml:"icons"`
		Bet          *int          `yaml:"bet"`
		ThreeOfAKind *int          `yaml:"three_of_a_kind"`
		TwoAdjacent  *int          `yaml:"two_adjacent"`
		TimePerIcon  time.Duration `yaml:"time_per_icon"`
		ReelStagger  time.Duration `yaml:"reel_stagger"`
	} `yaml:"slot"`
	Plinko struct {
		BoardSize   float64       `yaml:"board_size"`
		Rows        int           `yaml:"rows"`
		Obstacles   int           `yaml:"obstacles"`
		ZonePayouts []int         `yaml:"zone_payouts"`
		Tick        time.Duration `yaml:"tick"`
	} `yaml:"plinko"`
	LedgerCapacity int `yaml:"ledger_capacity"`
}

type gameConfig struct {
	icons       []string
	slotRules   slot.Rules
	slotTiming  slot.Timing
	plinkoRules plinko.Rules
	boardSize   float64
	layout      plinko.Layout
	tick        time.Duration
	capacity    int
}

// NewGameConfigFromYAML reads the game rules. A missing file yields the defaults.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewGameConfig(nil)
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}
	return NewGameConfig(data)
}

// NewGameConfig parses the YAML document, filling every missing key with its default
func NewGameConfig(data []byte) (config.GameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := &gameConfig{
		icons:       slot.DefaultIcons,
		slotRules:   slot.DefaultRules(),
		slotTiming:  slot.DefaultTiming(),
		plinkoRules: plinko.DefaultRules(),
		boardSize:   plinko.DefaultBoardSize,
		layout:      plinko.DefaultLayout(),
		tick:        16 * time.Millisecond,
		capacity:    ledger.DefaultCapacity,
	}

	if len(raw.Slot.Icons) > 0 {
		cfg.icons = raw.Slot.Icons
	}
	if raw.Slot.Bet != nil {
		cfg.slotRules.Bet = *raw.Slot.Bet
	}
	if raw.Slot.ThreeOfAKind != nil {
		cfg.slotRules.ThreeOfAKind = *raw.Slot.ThreeOfAKind
	}
	if raw.Slot.TwoAdjacent != nil {
		cfg.slotRules.TwoAdjacent = *raw.Slot.TwoAdjacent
	}
	if raw.Slot.TimePerIcon > 0 {
		cfg.slotTiming.PerIcon = raw.Slot.TimePerIcon
	}
	if raw.Slot.ReelStagger > 0 {
		cfg.slotTiming.Stagger = raw.Slot.ReelStagger
	}
	if raw.Plinko.BoardSize > 0 {
		cfg.boardSize = raw.Plinko.BoardSize
	}
	if raw.Plinko.Rows > 0 {
		cfg.layout.Rows = raw.Plinko.Rows
	}
	if raw.Plinko.Obstacles > 0 {
		cfg.layout.Obstacles = raw.Plinko.Obstacles
	}
	if len(raw.Plinko.ZonePayouts) > 0 {
		cfg.plinkoRules.ZonePayouts = raw.Plinko.ZonePayouts
	}
	if raw.Plinko.Tick > 0 {
		cfg.tick = raw.Plinko.Tick
	}
	if raw.LedgerCapacity > 0 {
		cfg.capacity = raw.LedgerCapacity
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *gameConfig) validate() error {
	if len(cfg.icons) < 2 {
		return errors.New("slot needs at least two icons")
	}
	if cfg.slotRules.Bet < 0 || cfg.slotRules.ThreeOfAKind < 0 || cfg.slotRules.TwoAdjacent < 0 {
		return errors.New("slot amounts must not be negative")
	}
	for _, p := range cfg.plinkoRules.ZonePayouts {
		if p < 0 {
			return errors.New("plinko zone payouts must not be negative")
		}
	}
	return nil
}

func (cfg *gameConfig) SlotIcons() []string {
	return cfg.icons
}

func (cfg *gameConfig) SlotRules() slot.Rules {
	return cfg.slotRules
}

func (cfg *gameConfig) SlotTiming() slot.Timing {
	return cfg.slotTiming
}

func (cfg *gameConfig) PlinkoRules() plinko.Rules {
	return cfg.plinkoRules
}

func (cfg *gameConfig) PlinkoBoardSize() float64 {
	return cfg.boardSize
}

func (cfg *gameConfig) PlinkoLayout() plinko.Layout {
	return cfg.layout
}

func (cfg *gameConfig) PlinkoTick() time.Duration {
	return cfg.tick
}

func (cfg *gameConfig) LedgerCapacity() int {
	return cfg.capacity
}
