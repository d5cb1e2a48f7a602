// Package legislature contains the calendar and identifier arithmetic of the
// U.S. congress: legislative years, congress numbers and bill types.
package legislature

import (
	"time"

	"congress-scraper/internal/components/assert"
	"congress-scraper/internal/components/chrono"
)

// a new congress convenes at noon on January 3rd
const (
	conveneDay  = 3
	conveneHour = 12
)

// CurrentLegislativeYear returns the year used for congress arithmetic at the
// instant now. Until noon on January 3rd the previous year's session is still
// current. The date fields are read in now's own location.
func CurrentLegislativeYear(now time.Time) int {
	year := now.Year()
	if now.Month() != time.January {
		return year
	}

	day := now.Day()
	if day < conveneDay {
		return year - 1
	}
	if day == conveneDay && now.Hour() < conveneHour {
		return year - 1
	}
	return year
}

// CongressFromYear returns the number of the congress sitting during the given
// legislative year. Years before 1789 yield values less than 1.
func CongressFromYear(year int) int {
	return (year+1)/2 - 894
}

// CurrentCongress returns the number of the congress sitting at clock.Now().
func CurrentCongress(clock chrono.API) int {
	assert.NotNil(clock)
	return CongressFromYear(CurrentLegislativeYear(clock.Now()))
}
