package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// FormatCentavos renders an amount in centavos as Brazilian currency,
// e.g. 123456 -> "R$ 1.234,56". Negative amounts keep the sign before "R$".
func FormatCentavos(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	reais := amount / 100
	cents := amount % 100

	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(reais), cents)
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// CourierETA estimates the delivery time between two coordinates using
// straight-line (haversine) distance at an average courier speed, plus a
// fixed preparation time. It backs up the delivery-time endpoint when the
// server cannot be reached; the server's own forecast is always preferred.
func CourierETA(fromLat, fromLon, toLat, toLon, speedKmh float64, preparation time.Duration) (time.Duration, float64) {
	if speedKmh <= 0 {
		speedKmh = 25
	}

	from := orb.Point{fromLon, fromLat}
	to := orb.Point{toLon, toLat}

	distanceKm := geo.Distance(from, to) / 1000
	travel := time.Duration(distanceKm / speedKmh * float64(time.Hour))

	return (preparation + travel).Round(time.Minute), distanceKm
}
