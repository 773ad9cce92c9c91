package service

import (
	"time"

	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
)

// clipPeriod intersects the request window [reqStart, reqEnd) with the
// tariff's validity window. The tariff end date is inclusive, so one day is
// added before intersecting. Returns ok=false when the result is empty.
func clipPeriod(reqStart, reqEnd time.Time, tariff tariffdomain.Tariff) (start, end time.Time, ok bool) {
	start = reqStart
	if tariff.StartDate != nil && tariff.StartDate.After(start) {
		start = *tariff.StartDate
	}

	end = reqEnd
	if tariff.EndDate != nil {
		if exclusive := tariff.EndDate.AddDate(0, 0, 1); exclusive.Before(end) {
			end = exclusive
		}
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
