package model

import "time"

const Operator = "UZ"

// Departure is the display-ready form of one upstream departure.
type Departure struct {
	AimedDepartureTime    string `json:"aimedDepartureTime"`
	ExpectedDepartureTime string `json:"expectedDepartureTime"`
	DestinationName       string `json:"destinationName"`
	Platform              string `json:"platform"`
	TrainNumber           string `json:"trainNumber"`
	CallingAtList         string `json:"callingAtList"`
	Carriages             int    `json:"carriages"`
	Operator              string `json:"operator"`
}

// StationSchedule is what the poller pushes onto the queue for the display.
type StationSchedule struct {
	StationID   string      `json:"stationId"`
	StationName string      `json:"stationName"`
	Departures  []Departure `json:"departures"`
	FetchedAt   time.Time   `json:"fetchedAt"`
}
