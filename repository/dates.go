package repository

import (
	"time"

	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
)

const DateLayout = "2006-01-02"

// dayRange turns a YYYY-MM-DD string into the [start, next) window used for
// created_at filtering. Comparing time values keeps the queries portable and
// avoids timezone-normalizing SQL date functions.
func dayRange(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("date must be in YYYY-MM-DD format")
	}
	return start, start.AddDate(0, 0, 1), nil
}
