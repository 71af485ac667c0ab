// internal/domain/models/weather.go
package models

// WeatherSnapshot is the normalized current-conditions object returned by
// the weather upstream. It is produced fresh per request and never stored.
// All numeric fields are expressed in the unit system named by Units.
type WeatherSnapshot struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	HeatIndex   float64 `json:"heatIndex"`
	Dewpoint    float64 `json:"dewpoint"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Gust        float64 `json:"gust"`
	Pressure    float64 `json:"pressure"`
	Units       string  `json:"units"` // metric | imperial
}
