package console

import (
	"context"
	"strings"
	"time"

	"mini_casino/internal/engine/plinko"
)

func (c *Console) spin(ctx context.Context) error {
	spin, err := c.slot.Start(ctx)
	if err != nil {
		return err
	}
	c.printf("bet %d\n", spin.Bet.ScoreDelta)
	c.warnPersist(spin.PersistErr)

	// reels stop one after another
	var elapsed time.Duration
	for i, stop := range spin.StopAfter {
		if err := c.wait(ctx, stop-elapsed); err != nil {
			c.logger.Debug("spin animation interrupted")
			break
		}
		elapsed = stop
		c.printf("  reel %d: %s\n", i+1, spin.Symbols[i])
	}

	// the round is settled even when the animation was cut short
	outcome, err := c.slot.Settle(context.WithoutCancel(ctx))
	if err != nil {
		return err
	}
	c.printf("[ %s ]\n", strings.Join(outcome.Symbols[:], " | "))
	switch {
	case outcome.Victory:
		c.printf("JACKPOT! +%d\n", outcome.Payout)
	case outcome.Payout > 0:
		c.printf("pair, +%d\n", outcome.Payout)
	default:
		c.printf("no win\n")
	}
	c.warnPersist(outcome.PersistErr)
	return nil
}

func (c *Console) drop(ctx context.Context, replay bool) error {
	var err error
	if replay {
		err = c.plinko.Replay()
	} else {
		err = c.plinko.Launch()
	}
	if err != nil {
		return err
	}

	size := c.plinko.Board().Size()
	lastRow := -1
	for i := 0; i < maxDropTicks; i++ {
		landing, err := c.plinko.Tick(context.WithoutCancel(ctx))
		if err != nil {
			return err
		}
		if landing != nil {
			c.printf("landed at x=%.1f in zone %d: +%d\n", landing.X, landing.Zone+1, landing.Payout)
			if landing.Victory {
				c.printf("victory!\n")
			}
			c.warnPersist(landing.PersistErr)
			return nil
		}

		// one progress line per tenth of the board
		ball := c.plinko.Ball()
		if row := int(ball.Y / size * 10); row != lastRow {
			lastRow = row
			c.printf("  %s\n", track(ball, size))
		}
		if err := c.wait(ctx, c.tick); err != nil {
			c.logger.Debug("drop animation interrupted, finishing without waits")
			c.pace = 0
		}
	}
	return nil
}

// track draws the ball position on a 40 column line
func track(ball plinko.Ball, size float64) string {
	const width = 40
	col := int(ball.X / size * width)
	col = max(0, min(width-1, col))
	return "|" + strings.Repeat(" ", col) + "o" + strings.Repeat(" ", width-1-col) + "|"
}
