package worker

import (
	"context"
	"log"
	"sync"
	"time"
	"uz-departures/internal"
	"uz-departures/model"
)

var stationTimeout = 30 * time.Second

type ScheduleLoader interface {
	Load(ctx context.Context, stationID string, rows string) model.StationSchedule
}

type Worker struct {
	ID           int
	Stations     []string
	Rows         string
	ScheduleChan chan model.StationSchedule
	Loader       ScheduleLoader
	InitialDelay time.Duration
	Ticker       *time.Ticker
	Counter      *internal.BoardCheckCounter
}

func (w *Worker) Work(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	defer w.Ticker.Stop()

	select {
	case <-time.After(w.InitialDelay):
	case <-ctx.Done():
		return
	}

	log.Printf("worker %d starting...", w.ID)

	w.checkStations(ctx)

	for {
		select {
		case <-w.Ticker.C:
			w.checkStations(ctx)
		case <-ctx.Done():
			log.Printf("worker %d stopping...", w.ID)
			return
		}
	}
}

func (w *Worker) checkStations(ctx context.Context) {
	for _, station := range w.Stations {
		stationCtx, cancel := context.WithTimeout(ctx, stationTimeout)
		err := w.checkStation(stationCtx, station)
		cancel()

		if ctx.Err() != nil {
			log.Printf("worker %d stopping during station check...", w.ID)
			return
		}
		if err != nil {
			log.Printf("worker %d could not deliver board for %s: %v", w.ID, station, err)
		}
	}
}

// checkStation loads one board and hands it to the listener. Board failures
// are already folded into the schedule's station name, so the only error is
// the context ending before the schedule could be delivered.
func (w *Worker) checkStation(ctx context.Context, station string) error {
	schedule := w.Loader.Load(ctx, station, w.Rows)

	empty := len(schedule.Departures) == 0
	if empty {
		log.Printf("no departures for station %s (%s)", station, schedule.StationName)
	}

	if w.Counter != nil {
		w.Counter.Record(empty)
	}

	select {
	case w.ScheduleChan <- schedule:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
