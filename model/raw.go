package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNoDepartures       = errors.New("board has no departures field")
	ErrDeparturesNotArray = errors.New("board departures field is not an array")
)

// RawBoard is the station board as returned by the UZ station-boards endpoint.
// Every field is kept raw so a single malformed value never fails the decode
// of the whole payload; use the accessor methods to read them.
type RawBoard struct {
	Station    json.RawMessage `json:"station"`
	Departures json.RawMessage `json:"departures"`
}

// RawDeparture is a single, undecoded entry of RawBoard.Departures.
type RawDeparture struct {
	Time         json.RawMessage `json:"time"`
	DelayMinutes json.RawMessage `json:"delay_minutes"`
	Route        json.RawMessage `json:"route"`
	Destination  json.RawMessage `json:"destination"`
	Platform     json.RawMessage `json:"platform"`
	Train        json.RawMessage `json:"train"`
}

type namedDescriptor struct {
	Name json.RawMessage `json:"name"`
}

// IsEmpty reports whether the board carries neither station metadata nor departures,
// which is what a `null` or `{}` body decodes to.
func (b *RawBoard) IsEmpty() bool {
	return b == nil || (Absent(b.Station) && Absent(b.Departures))
}

// StationName returns the trimmed station.name, if the board has one.
func (b *RawBoard) StationName() (string, bool) {
	if b == nil {
		return "", false
	}
	return descriptorName(b.Station)
}

// Entries splits the departures array into raw entries. Entries that are not
// JSON objects come back as an all-absent RawDeparture.
func (b *RawBoard) Entries() ([]RawDeparture, error) {
	if b == nil || Absent(b.Departures) {
		return nil, ErrNoDepartures
	}

	var items []json.RawMessage
	if err := json.Unmarshal(b.Departures, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeparturesNotArray, err)
	}

	entries := make([]RawDeparture, len(items))
	for i, item := range items {
		var entry RawDeparture
		if err := json.Unmarshal(item, &entry); err == nil {
			entries[i] = entry
		}
	}

	return entries, nil
}

// DestinationName returns the trimmed destination.name, if present and non-empty.
func (d RawDeparture) DestinationName() (string, bool) {
	return descriptorName(d.Destination)
}

func descriptorName(raw json.RawMessage) (string, bool) {
	if Absent(raw) {
		return "", false
	}
	var desc namedDescriptor
	if err := json.Unmarshal(raw, &desc); err != nil {
		return "", false
	}
	name, ok := String(desc.Name)
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

// Absent reports whether a raw value is missing or JSON null.
func Absent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// String decodes a raw JSON string.
func String(raw json.RawMessage) (string, bool) {
	if Absent(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Number decodes a finite raw JSON number, or a JSON string holding one.
func Number(raw json.RawMessage) (float64, bool) {
	if Absent(raw) {
		return 0, false
	}
	var f float64
	if s, ok := String(raw); ok {
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0, false
		}
	} else if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	// ParseFloat accepts "Inf" and "NaN", neither is a usable number here
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Scalar renders a raw string, number or boolean as text. Numbers keep their
// literal form, so 749 stays "749" rather than "749.000000".
func Scalar(raw json.RawMessage) (string, bool) {
	if Absent(raw) {
		return "", false
	}
	if s, ok := String(raw); ok {
		return s, true
	}
	trimmed := bytes.TrimSpace(raw)
	switch trimmed[0] {
	case '{', '[':
		return "", false
	}
	var v interface{}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return "", false
	}
	return string(trimmed), true
}
