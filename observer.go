package gridpath

import (
	"context"
	"log/slog"
	"time"
)

// SearchReport describes one finished FindPath call.
type SearchReport struct {
	Start         Coord
	Goal          Coord
	Duration      time.Duration
	ExpandedNodes int
	Found         bool
	TotalCost     int
	Err           error
}

// Observer receives search reports. Implementations must be safe for
// concurrent use when the Pathfinder is shared.
type Observer interface {
	ObserveSearch(report SearchReport)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(report SearchReport)

func (f ObserverFunc) ObserveSearch(report SearchReport) { f(report) }

// LogObserver logs each search at debug level, failures at warn.
func LogObserver(logger *slog.Logger) Observer {
	return ObserverFunc(func(report SearchReport) {
		attrs := []slog.Attr{
			slog.String("start", report.Start.String()),
			slog.String("goal", report.Goal.String()),
			slog.Duration("duration", report.Duration),
			slog.Int("expanded", report.ExpandedNodes),
			slog.Bool("found", report.Found),
		}
		if report.Found {
			attrs = append(attrs, slog.Int("cost", report.TotalCost))
		}
		if report.Err != nil {
			attrs = append(attrs, slog.Any("error", report.Err))
			logger.LogAttrs(context.Background(), slog.LevelWarn, "path search failed", attrs...)
			return
		}
		logger.LogAttrs(context.Background(), slog.LevelDebug, "path search finished", attrs...)
	})
}
