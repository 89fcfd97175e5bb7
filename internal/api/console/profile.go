package console

import "context"

func (c *Console) history() {
	rounds := c.profile.History()
	if len(rounds) == 0 {
		c.printf("no rounds yet\n")
		return
	}
	for _, r := range rounds {
		mark := ""
		if r.IsVictory {
			mark = " *"
		}
		c.printf("%s  %-6s %+5d%s\n", r.Timestamp.Local().Format("02/01 15:04:05"), r.GameType, r.ScoreDelta, mark)
	}
}

func (c *Console) clear(ctx context.Context) error {
	err := c.profile.ClearHistory(ctx)
	c.printf("history cleared\n")
	return err
}

func (c *Console) stats() {
	stats := c.profile.VictoryStats()
	c.printf("victories: %d\n", stats.TotalWins)
	for _, v := range stats.Victories {
		c.printf("  %s  %-6s +%d\n", v.Timestamp.Local().Format("02/01 15:04:05"), v.GameType, v.WinAmount)
	}
}

func (c *Console) player(ctx context.Context, id string) error {
	if err := c.profile.SetPlayerID(ctx, id); err != nil {
		return err
	}
	c.printf("player %q, %d rounds, %d victories\n",
		c.profile.PlayerID(), len(c.profile.History()), c.profile.VictoryStats().TotalWins)
	return nil
}
