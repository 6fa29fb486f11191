package service

import (
	"math"
	"time"

	"salama/shared/constant"
)

// Nights returns the number of nights between two calendar dates given in
// "2006-01-02" form, interpreted in UTC. Absent or malformed dates and
// check-out on or before check-in yield 0.
func Nights(checkIn, checkOut string) int {
	start, err := time.Parse(constant.StayDateFormat, checkIn)
	if err != nil {
		return 0
	}

	end, err := time.Parse(constant.StayDateFormat, checkOut)
	if err != nil {
		return 0
	}

	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	if nights < 0 {
		return 0
	}

	return nights
}

// Total is the stay price: nights times the nightly rate.
func Total(nights int, pricePerNight float64) float64 {
	return float64(nights) * pricePerNight
}
