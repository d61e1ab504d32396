package composer

import (
	"time"

	"hotel-assistant/internal/hotelctx"
	"hotel-assistant/pkg/datemath"
	pkgLog "hotel-assistant/pkg/log"
)

type implComposer struct {
	l          pkgLog.Logger
	collab     hotelctx.Collaborator
	dates      *datemath.Parser
	opts       Options
	now        func() time.Time
	extractors []extractor
}

var _ Composer = (*implComposer)(nil)

// New creates a composer reading hotel facts from collab.
// dates also fixes the hotel timezone used in the time block.
func New(l pkgLog.Logger, collab hotelctx.Collaborator, dates *datemath.Parser, opts Options) *implComposer {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}
	if opts.ExtractConcurrency <= 0 {
		opts.ExtractConcurrency = DefaultExtractConcurrency
	}

	c := &implComposer{
		l:      l,
		collab: collab,
		dates:  dates,
		opts:   opts,
		now:    time.Now,
	}
	c.extractors = []extractor{
		c.extractRoom,
		c.extractPromotion,
		c.extractService,
		c.extractOccupancy,
		c.extractRoleStats,
		c.extractStayDate,
	}
	return c
}
