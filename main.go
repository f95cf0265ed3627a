package main

import (
	"fmt"
	"log"
	"uz-departures/board"
	cmd "uz-departures/cmd/server"
	"uz-departures/config"
	"uz-departures/redis"
	"uz-departures/schedule"
	"uz-departures/station"
	"uz-departures/uz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	stations := station.ResolveAll(cfg.Stations)
	if cfg.StationsFile != "" {
		fromFile, err := station.GetStations(cfg.StationsFile)
		if err != nil {
			log.Fatalf("could not read stations from %s: %v", cfg.StationsFile, err)
		}
		stations = append(stations, fromFile...)
	}
	fmt.Printf("there are %d stations to check\n", len(stations))

	redisClient, err := redis.NewRedisClient(cfg.ScheduleQueueName, cfg.RedisAddress)
	if err != nil {
		log.Fatalf("could not create redis client: %v", err)
	}
	defer redisClient.Close()

	assembler := schedule.NewAssembler(
		uz.NewClient(uz.WithBaseURL(cfg.UZBaseURL)),
		board.NewNormalizer(cfg.Location),
	)

	app := cmd.NewApp(assembler, redisClient, cmd.Options{
		NumWorkers:    cfg.NumWorkers,
		Stations:      stations,
		Rows:          cfg.BoardRows,
		PollInterval:  cfg.PollInterval,
		HealthAddress: cfg.HealthAddress,
	})

	app.SetupWorkers()
	app.AddHealthCheckEndpoint()
	app.Run()

	fmt.Println("Shutting down...")
}
