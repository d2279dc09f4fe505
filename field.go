package datelingo

// Field identifies one of the date/time components a parser can state
// or a refiner can infer. The set is closed.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMillisecond
	FieldWeekday
	FieldMeridiem
	// FieldTimezoneOffset holds minutes east of UTC.
	FieldTimezoneOffset

	numFields
)

// Meridiem values stored under FieldMeridiem.
const (
	MeridiemAM = 0
	MeridiemPM = 1
)

var fieldNames = [...]string{
	FieldYear:           "year",
	FieldMonth:          "month",
	FieldDay:            "day",
	FieldHour:           "hour",
	FieldMinute:         "minute",
	FieldSecond:         "second",
	FieldMillisecond:    "millisecond",
	FieldWeekday:        "weekday",
	FieldMeridiem:       "meridiem",
	FieldTimezoneOffset: "timezoneOffset",
}

func (f Field) String() string {
	if f >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}
