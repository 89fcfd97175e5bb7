// Package console is the terminal front-end of the games: one command per line.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"mini_casino/internal/model"
	"mini_casino/internal/service"
)

const maxDropTicks = 100000

var errQuit = errors.New("quit")

type HandlerDeps struct {
	Game    model.GameType
	Profile service.ProfileService
	Slot    service.SlotService   // required for the slot game
	Plinko  service.PlinkoService // required for the plinko game
	// Pace scales the animation waits, 0 skips them
	Pace   float64
	Tick   time.Duration
	Out    io.Writer
	Logger *zap.Logger
}

type Console struct {
	game    model.GameType
	profile service.ProfileService
	slot    service.SlotService
	plinko  service.PlinkoService
	pace    float64
	tick    time.Duration
	out     io.Writer
	logger  *zap.Logger
}

func NewConsole(deps HandlerDeps) *Console {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		game:    deps.Game,
		profile: deps.Profile,
		slot:    deps.Slot,
		plinko:  deps.Plinko,
		pace:    deps.Pace,
		tick:    deps.Tick,
		out:     deps.Out,
		logger:  logger,
	}
}

// Run reads commands from in until quit, EOF or ctx is done
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	c.printf("%s ready, player %q. Type help for commands.\n", c.game, c.profile.PlayerID())
	c.prompt()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if err := c.Exec(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				c.printf("error: %v\n", err)
			}
			c.prompt()
		}
	}
}

// Exec runs one command line
func (c *Console) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "spin":
		if c.game != model.GameSlot {
			return fmt.Errorf("spin is a slot command")
		}
		return c.spin(ctx)
	case "drop":
		if c.game != model.GamePlinko {
			return fmt.Errorf("drop is a plinko command")
		}
		return c.drop(ctx, false)
	case "replay":
		if c.game != model.GamePlinko {
			return fmt.Errorf("replay is a plinko command")
		}
		return c.drop(ctx, true)
	case "history":
		c.history()
	case "clear":
		return c.clear(ctx)
	case "stats":
		c.stats()
	case "score":
		c.printf("current score: %d\n", c.profile.CurrentScore(ctx))
	case "player":
		return c.player(ctx, strings.Join(fields[1:], " "))
	case "help":
		c.help()
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (c *Console) help() {
	play := "spin            take the bet and spin the reels"
	if c.game == model.GamePlinko {
		play = "drop            launch the ball\n  replay          drop a fresh ball after a landing"
	}
	c.printf("commands:\n  %s\n"+
		"  history         last rounds, newest first\n"+
		"  clear           clear the round history\n"+
		"  stats           victory count and list\n"+
		"  score           current score\n"+
		"  player <id>     switch player, blank for the default\n"+
		"  quit\n", play)
}

// wait sleeps d scaled by the pace, returning early when ctx is done
func (c *Console) wait(ctx context.Context, d time.Duration) error {
	if c.pace <= 0 || d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(float64(d) * c.pace))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Console) warnPersist(err error) {
	if err != nil {
		c.printf("warning: round kept in memory only: %v\n", err)
	}
}

func (c *Console) prompt() {
	c.printf("> ")
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
