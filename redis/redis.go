package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"log"
	"uz-departures/model"
)

type IRedisClient interface {
	PushToQueue(ctx context.Context, schedule model.StationSchedule) error
}

type RedisClient struct {
	queueName string
	client    *redis.Client
}

func NewRedisClient(queueName string, redisAddress string) (*RedisClient, error) {
	r := redis.NewClient(&redis.Options{
		Addr: redisAddress,
	})

	ctx := context.Background()
	_, err := r.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisClient{queueName: queueName, client: r}, nil
}

// PushToQueue appends the schedule, as JSON, to the tail of the queue list.
func (r *RedisClient) PushToQueue(ctx context.Context, schedule model.StationSchedule) error {

	scheduleJSON, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("error serializing schedule for %s to JSON: %w", schedule.StationID, err)
	}

	err = r.client.RPush(ctx, r.queueName, scheduleJSON).Err()
	if err != nil {
		return fmt.Errorf("error adding schedule for %s to Redis queue: %w", schedule.StationID, err)
	}

	log.Printf("pushed %d departures for %s to %s", len(schedule.Departures), schedule.StationID, r.queueName)
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
