package types

import "time"

// Reading is one temperature/humidity sample
type Reading struct {
	Temperature float64 // °C
	Humidity    float64 // %RH
	Time        time.Time
}
