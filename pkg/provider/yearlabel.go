package provider

import (
	"strconv"
	"time"
)

// endedStatuses are the upstream status values meaning a show has stopped airing.
var endedStatuses = map[string]struct{}{
	"Ended":    {},
	"Canceled": {},
}

// DeriveYearLabel builds the display year range for a show: "2016-Present"
// while airing, "2008-2013" once ended, collapsed to "2008" when the run
// started and ended in the same year. An unknown first-air date yields "".
func DeriveYearLabel(firstAired, lastAired *time.Time, status string) string {
	if firstAired == nil {
		return ""
	}

	start := firstAired.Year()
	if _, ended := endedStatuses[status]; ended && lastAired != nil {
		end := lastAired.Year()
		if end == start {
			return strconv.Itoa(start)
		}
		return strconv.Itoa(start) + "-" + strconv.Itoa(end)
	}

	return strconv.Itoa(start) + "-Present"
}
