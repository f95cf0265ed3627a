package board

import (
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"uz-departures/model"
)

const (
	ConnectionFailed   = "Connection Failed"
	DefaultStationName = "UZ Station"
	UnknownDestination = "Destination Unknown"
	NoTime             = "--:--"
	BadTime            = "Bad Time"
	OnTime             = "On time"
	NoTrainNumber      = "N/A"
	OperatorTag        = "(UZ)"
)

// time.Unix accepts any int64, these bound it to years 1 through 9999
const (
	minEpoch = -62135596800
	maxEpoch = 253402300799
)

// Normalizer turns a raw UZ station board into display-ready departures.
// The zero value renders times in time.Local.
type Normalizer struct {
	Location *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	return &Normalizer{Location: loc}
}

// Normalize never fails: a nil or empty board is reported as ConnectionFailed,
// any other defect degrades to a placeholder for the affected field only.
func (n *Normalizer) Normalize(raw *model.RawBoard) ([]model.Departure, string) {
	if raw.IsEmpty() {
		return []model.Departure{}, ConnectionFailed
	}

	stationName, ok := raw.StationName()
	if !ok {
		stationName = DefaultStationName
	}

	entries, err := raw.Entries()
	if err != nil {
		log.Printf("station %s: %v", stationName, err)
		return []model.Departure{}, stationName
	}

	departures := make([]model.Departure, 0, len(entries))
	for _, entry := range entries {
		departures = append(departures, n.departure(entry))
	}

	return sortByAimedTime(departures), stationName
}

func (n *Normalizer) departure(entry model.RawDeparture) model.Departure {
	route := cleanRoute(entry)
	destination := resolveDestination(entry)
	trainNumber := resolveTrainNumber(entry)

	return model.Departure{
		AimedDepartureTime:    n.aimedTime(entry),
		ExpectedDepartureTime: expectedTime(entry),
		DestinationName:       destination,
		Platform:              platform(entry),
		TrainNumber:           trainNumber,
		CallingAtList:         summary(trainNumber, destination, route),
		Carriages:             0,
		Operator:              model.Operator,
	}
}

func (n *Normalizer) location() *time.Location {
	if n == nil || n.Location == nil {
		return time.Local
	}
	return n.Location
}

func (n *Normalizer) aimedTime(entry model.RawDeparture) string {
	if model.Absent(entry.Time) {
		return NoTime
	}

	ts, ok := model.Number(entry.Time)
	if !ok || ts < minEpoch || ts > maxEpoch {
		log.Printf("could not convert departure time %s", entry.Time)
		return BadTime
	}

	return time.Unix(int64(ts), 0).In(n.location()).Format("15:04")
}

func expectedTime(entry model.RawDeparture) string {
	delay, ok := model.Number(entry.DelayMinutes)
	if !ok || math.IsNaN(delay) {
		return OnTime
	}

	mins := math.Floor(delay)
	if mins < 1 {
		return OnTime
	}

	return "Late " + strconv.FormatFloat(mins, 'f', 0, 64) + "m"
}

func platform(entry model.RawDeparture) string {
	p, _ := model.Scalar(entry.Platform)
	return p
}

func summary(trainNumber, destination, route string) string {
	segments := []string{"Train " + trainNumber + " to " + destination + "."}
	if route != "" {
		segments = append(segments, "Route: "+route+".")
	}
	segments = append(segments, OperatorTag)

	return joinWithSpaces(segments...)
}

func joinWithSpaces(segments ...string) string {
	kept := segments[:0:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}

// sortByAimedTime orders departures by their HH:MM string. Placeholders sort
// lexicographically among real times and there is no midnight rollover.
func sortByAimedTime(departures []model.Departure) (sorted []model.Departure) {
	sorted = make([]model.Departure, len(departures))
	copy(sorted, departures)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("could not sort departures, returning them unsorted: %v", r)
			sorted = departures
		}
	}()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AimedDepartureTime < sorted[j].AimedDepartureTime
	})

	return sorted
}
