package schedule

import (
	"context"
	"github.com/go-playground/validator/v10"
	"log"
	"strconv"
	"strings"
	"time"
	"uz-departures/board"
	"uz-departures/model"
	"uz-departures/uz"
)

const (
	ConfigError     = "Config Error"
	DefaultRowLimit = 10
)

// JourneyConfig is the per-request configuration supplied by the caller.
type JourneyConfig struct {
	DepartureStation string `validate:"required"`
}

type Assembler struct {
	Fetcher    uz.BoardFetcher
	Normalizer *board.Normalizer
	now        func() time.Time
}

// validator.Validate caches struct metadata and is safe for concurrent use
var validate = validator.New()

func NewAssembler(fetcher uz.BoardFetcher, normalizer *board.Normalizer) *Assembler {
	return &Assembler{
		Fetcher:    fetcher,
		Normalizer: normalizer,
		now:        time.Now,
	}
}

// LoadDeparturesForStation fetches, normalizes and truncates the board for
// cfg.DepartureStation. apiKey is accepted for compatibility with other board
// loaders and is not used. It always returns a usable pair; failures show up
// as a sentinel station name.
func (a *Assembler) LoadDeparturesForStation(ctx context.Context, cfg *JourneyConfig, apiKey string, rows string) ([]model.Departure, string) {
	if cfg == nil {
		log.Println("no journey config supplied")
		return []model.Departure{}, ConfigError
	}

	journey := JourneyConfig{DepartureStation: strings.TrimSpace(cfg.DepartureStation)}
	if err := validate.Struct(journey); err != nil {
		log.Printf("invalid journey config: %v", err)
		return []model.Departure{}, ConfigError
	}

	raw, err := a.Fetcher.GetBoard(ctx, journey.DepartureStation)
	if err != nil {
		log.Printf("could not get departure board for %s: %v", journey.DepartureStation, err)
		raw = nil
	}

	departures, stationName := a.Normalizer.Normalize(raw)

	return truncate(departures, RowLimit(rows)), stationName
}

// Load is LoadDeparturesForStation packaged as a StationSchedule.
func (a *Assembler) Load(ctx context.Context, stationID string, rows string) model.StationSchedule {
	departures, name := a.LoadDeparturesForStation(ctx, &JourneyConfig{DepartureStation: stationID}, "", rows)

	return model.StationSchedule{
		StationID:   stationID,
		StationName: name,
		Departures:  departures,
		FetchedAt:   a.clock()(),
	}
}

func (a *Assembler) clock() func() time.Time {
	if a.now == nil {
		return time.Now
	}
	return a.now
}

// RowLimit parses a requested row count, falling back to DefaultRowLimit for
// anything that is not a positive integer.
func RowLimit(rows string) int {
	n, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil || n < 1 {
		return DefaultRowLimit
	}
	return n
}

func truncate(departures []model.Departure, limit int) []model.Departure {
	if len(departures) <= limit {
		return departures
	}
	return departures[:limit]
}
