package pycore

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string { return d.Time().Format("2006-01-02") }

// TimeOfDay is a time without a date component.
type TimeOfDay struct {
	Hour, Minute, Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Case-insensitive string forms accepted by lax bool coercion.
var (
	boolTrueStrings  = map[string]struct{}{"1": {}, "on": {}, "t": {}, "true": {}, "y": {}, "yes": {}}
	boolFalseStrings = map[string]struct{}{"0": {}, "off": {}, "f": {}, "false": {}, "n": {}, "no": {}}
)

func strAsBool(in Input, s string) (bool, error) {
	lower := strings.ToLower(s)
	if _, ok := boolTrueStrings[lower]; ok {
		return true, nil
	}
	if _, ok := boolFalseStrings[lower]; ok {
		return false, nil
	}
	return false, lineErr(KindBoolParsing, in, nil)
}

func intAsBool(in Input, i int64) (bool, error) {
	switch i {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, lineErr(KindBoolParsing, in, nil)
	}
}

func strAsInt(in Input, s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, lineErr(KindIntParsing, in, nil)
	}
	return i, nil
}

// floatAsInt converts only exactly-whole floats in int64 range; anything with
// a fractional part is an int_from_float failure. NaN, infinities and values
// outside [-2^63, 2^63) have no int64 representation and the conversion
// result would be unspecified, so they are refused up front.
func floatAsInt(in Input, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, lineErr(KindIntParsing, in, nil)
	}
	if math.Mod(f, 1.0) != 0 {
		return 0, lineErr(KindIntFromFloat, in, nil)
	}
	return int64(f), nil
}

func strAsFloat(in Input, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, lineErr(KindFloatParsing, in, nil)
	}
	return f, nil
}

func strAsDate(in Input, s string) (Date, error) {
	if len(s) != len("2006-01-02") {
		return Date{}, lineErr(KindDateParsing, in, errCtx("error", "input is too short"))
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, lineErr(KindDateParsing, in, errCtx("error", "day value is outside expected range"))
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// epochAsDate accepts unix seconds that land exactly on a UTC midnight.
func epochAsDate(in Input, epoch int64) (Date, error) {
	t := time.Unix(epoch, 0).UTC()
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 {
		return Date{}, lineErr(KindDateFromDatetimeInexact, in, nil)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func timeAsDate(in Input, t time.Time) (Date, error) {
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return Date{}, lineErr(KindDateFromDatetimeInexact, in, nil)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func strAsTime(in Input, s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return TimeOfDay{}, lineErr(KindTimeParsing, in, errCtx("error", "invalid character in time"))
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func secondsAsTime(in Input, secs int64) (TimeOfDay, error) {
	if secs < 0 || secs >= 86400 {
		return TimeOfDay{}, lineErr(KindTimeParsing, in, errCtx("error", "seconds of day out of range"))
	}
	return TimeOfDay{Hour: int(secs / 3600), Minute: int(secs / 60 % 60), Second: int(secs % 60)}, nil
}

// strAsDateTime accepts RFC3339 with or without sub-second precision, plus the
// common space-separated variant.
func strAsDateTime(in Input, s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, lineErr(KindDatetimeParsing, in, errCtx("error", "unable to parse string as a datetime"))
}

func epochAsDateTime(epoch float64) time.Time {
	sec, frac := math.Modf(epoch)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

func strAsTimedelta(in Input, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, lineErr(KindTimedeltaParsing, in, errCtx("error", "unable to parse string as a duration"))
	}
	return d, nil
}

func secondsAsTimedelta(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
