package view

import "time"

// Display layouts of the es-AR locale.
const (
	layoutDateTime       = "02/01/2006, 15:04"
	layoutDate           = "02/01/2006"
	layoutTime           = "15:04"
	layoutLongDateTime   = "2/1/2006, 15:04:05"
	layoutCalendarDate   = "2006-01-02"
	layoutLocalTimestamp = "2006-01-02T15:04:05"
)

// parseTimestamp accepts RFC 3339 timestamps, zone-less timestamps (read in
// loc) and bare dates (midnight in loc).
func parseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range []string{layoutLocalTimestamp, layoutCalendarDate} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatIn(s string, loc *time.Location, layout string) string {
	t, ok := parseTimestamp(s, loc)
	if !ok {
		return s
	}
	return t.In(loc).Format(layout)
}

// FormatDateTime renders "dd/mm/yyyy, HH:MM". Unparseable input is returned
// unchanged.
func FormatDateTime(s string, loc *time.Location) string {
	return formatIn(s, loc, layoutDateTime)
}

// FormatDate renders "dd/mm/yyyy".
func FormatDate(s string, loc *time.Location) string {
	return formatIn(s, loc, layoutDate)
}

// FormatTime renders "HH:MM".
func FormatTime(s string, loc *time.Location) string {
	return formatIn(s, loc, layoutTime)
}

// FormatLongDateTime renders "d/m/yyyy, HH:MM:SS".
func FormatLongDateTime(s string, loc *time.Location) string {
	return formatIn(s, loc, layoutLongDateTime)
}

// FormatDueDate renders a due date. Bare dates are calendar days and are not
// shifted across zones.
func FormatDueDate(s string, loc *time.Location) string {
	if t, err := time.Parse(layoutCalendarDate, s); err == nil {
		return t.Format(layoutDate)
	}
	return FormatDate(s, loc)
}
