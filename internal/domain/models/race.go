// internal/domain/models/race.go
package models

// Race is one upcoming event from a race-schedule provider.
type Race struct {
	Name     string `json:"name"`
	Date     string `json:"date"` // YYYY-MM-DD as supplied by the provider
	Location string `json:"location"`
	Country  string `json:"country"`
}

// RaceBoard aggregates the upcoming schedules of both series. A provider
// that failed or is not configured contributes an empty (non-nil) slice;
// the board itself never carries an error.
type RaceBoard struct {
	MotoGP []Race `json:"motogp"`
	F1     []Race `json:"f1"`
}
