package board

import (
	"strings"
	"uz-departures/model"
)

const routeSeparator = " - "

var routeReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u2192", routeSeparator,
	"->", routeSeparator,
)

// strategy derives one field from a raw entry; the first strategy that
// reports ok wins.
type strategy func(entry model.RawDeparture) (string, bool)

var destinationStrategies = []strategy{
	explicitDestination,
	routeDestination,
	wholeRoute,
}

var trainNumberStrategies = []strategy{
	trainDigits,
	trainVerbatim,
}

func firstOf(entry model.RawDeparture, strategies []strategy, fallback string) string {
	for _, s := range strategies {
		if v, ok := s(entry); ok {
			return v
		}
	}
	return fallback
}

func resolveDestination(entry model.RawDeparture) string {
	return firstOf(entry, destinationStrategies, UnknownDestination)
}

func resolveTrainNumber(entry model.RawDeparture) string {
	return firstOf(entry, trainNumberStrategies, NoTrainNumber)
}

func explicitDestination(entry model.RawDeparture) (string, bool) {
	return entry.DestinationName()
}

func routeDestination(entry model.RawDeparture) (string, bool) {
	route := normalizeRoute(entry)
	_, to, found := strings.Cut(route, routeSeparator)
	if !found {
		return "", false
	}
	to = strings.TrimSpace(to)
	return to, to != ""
}

// wholeRoute only applies to routes without a separator; "Kyiv - " names no destination.
func wholeRoute(entry model.RawDeparture) (string, bool) {
	route := normalizeRoute(entry)
	if strings.Contains(route, routeSeparator) {
		return "", false
	}
	route = strings.TrimSpace(route)
	return route, route != ""
}

// normalizeRoute folds every from/to separator variant into " - ".
func normalizeRoute(entry model.RawDeparture) string {
	route, ok := model.String(entry.Route)
	if !ok {
		return ""
	}
	return routeReplacer.Replace(route)
}

// cleanRoute returns the route with separators normalized and runs of
// whitespace collapsed, or "" if the entry has none.
func cleanRoute(entry model.RawDeparture) string {
	return strings.Join(strings.Fields(normalizeRoute(entry)), " ")
}

func rawTrain(entry model.RawDeparture) string {
	train, _ := model.Scalar(entry.Train)
	return strings.TrimSpace(train)
}

func trainDigits(entry model.RawDeparture) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, rawTrain(entry))
	return digits, digits != ""
}

func trainVerbatim(entry model.RawDeparture) (string, bool) {
	train := rawTrain(entry)
	return train, train != ""
}
