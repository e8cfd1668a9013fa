package scheduler

import (
	"context"
	"log/slog"

	"github.com/openbounty/bounty-api/internal/metrics"
	"github.com/openbounty/bounty-api/internal/repo"
	"github.com/robfig/cron/v3"
)

// RefreshCron is how often the open-issue gauges are recomputed from the DB.
const RefreshCron = "@every 1m"

// Run starts a background scheduler that periodically recounts open issues
// and their bounty sum, publishing both as gauges. The first refresh happens
// immediately so /metrics is populated before the first cron tick.
func Run(issueRepo *repo.IssueRepo) *cron.Cron {
	refresh := func() {
		count, total, err := issueRepo.OpenStats(context.Background())
		if err != nil {
			slog.Error("scheduler: refresh open issue stats", "error", err)
			return
		}
		metrics.SetOpenIssueStats(count, total)
	}

	refresh()

	c := cron.New()
	if _, err := c.AddFunc(RefreshCron, refresh); err != nil {
		// RefreshCron is a constant; this only fires if someone breaks it.
		slog.Error("scheduler: add refresh job", "error", err)
		return c
	}
	c.Start()
	return c
}
