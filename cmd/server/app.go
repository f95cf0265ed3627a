package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"uz-departures/internal"
	"uz-departures/model"
	"uz-departures/redis"
	"uz-departures/worker"
)

type App struct {
	loader        worker.ScheduleLoader
	redisClient   redis.IRedisClient
	numWorkers    int
	stations      []string
	rows          string
	pollInterval  time.Duration
	maxDelay      time.Duration
	counter       *internal.BoardCheckCounter
	workers       []*worker.Worker
	wg            sync.WaitGroup
	scheduleChan  chan model.StationSchedule
	healthAddress string
}

type Options struct {
	NumWorkers    int
	Stations      []string
	Rows          string
	PollInterval  time.Duration
	HealthAddress string
}

func NewApp(loader worker.ScheduleLoader, redisClient redis.IRedisClient, opts Options) *App {
	return &App{
		loader:        loader,
		redisClient:   redisClient,
		numWorkers:    opts.NumWorkers,
		stations:      opts.Stations,
		rows:          opts.Rows,
		pollInterval:  opts.PollInterval,
		maxDelay:      3 * time.Second,
		counter:       &internal.BoardCheckCounter{},
		wg:            sync.WaitGroup{},
		scheduleChan:  make(chan model.StationSchedule),
		healthAddress: opts.HealthAddress,
	}
}

func (a *App) SetupWorkers() {

	log.Println("setting up workers")

	numWorkers := a.numWorkers
	if numWorkers > len(a.stations) {
		numWorkers = len(a.stations)
	}
	if numWorkers == 0 {
		log.Println("no stations configured, no workers created")
		return
	}

	stationsPerWorker := len(a.stations) / numWorkers

	for i := 0; i < numWorkers; i++ {
		start := i * stationsPerWorker
		end := start + stationsPerWorker
		if i == numWorkers-1 {
			end = len(a.stations)
		}

		var initialDelay time.Duration
		if a.maxDelay > 0 {
			initialDelay = time.Duration(rand.Int63n(int64(a.maxDelay))) // to stop all the workers hitting UZ at once, stagger the initial invocation
		}

		worker := &worker.Worker{
			ID:           i,
			Stations:     a.stations[start:end],
			Rows:         a.rows,
			ScheduleChan: a.scheduleChan,
			Loader:       a.loader,
			InitialDelay: initialDelay,
			Ticker:       time.NewTicker(a.pollInterval),
			Counter:      a.counter,
		}

		a.workers = append(a.workers, worker)
	}

	log.Printf("created %d workers", len(a.workers))

}

func (a *App) Run() {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		fmt.Printf("Received signal %v. Starting shutdown...\n", sig)
		cancel()
	}()

	a.run(ctx)
}

func (a *App) run(ctx context.Context) {
	log.Println("starting workers...")

	// start workers
	for _, worker := range a.workers {
		a.wg.Add(1)
		go worker.Work(ctx, &a.wg)
	}

	done := make(chan struct{})
	go func() {
		a.listen()
		close(done)
	}()

	a.wg.Wait()
	close(a.scheduleChan)
	<-done
}

func (a *App) listen() {
	ctx := context.Background()
	for schedule := range a.scheduleChan {

		log.Printf("received board for %s (%s) with %d departures", schedule.StationID, schedule.StationName, len(schedule.Departures))

		if err := a.redisClient.PushToQueue(ctx, schedule); err != nil {
			log.Printf("could not publish board for %s: %v", schedule.StationID, err)
		}
	}
}
