package heatmap

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// TimeFormat builds a formatting function from a strftime like pattern
// (eg: %B for the full month name).
func TimeFormat(format string) (func(time.Time) string, error) {
	format, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return func(t time.Time) string {
		return t.Format(format)
	}, nil
}

// YearFormat formats a tick of the year axis as an integer.
func YearFormat(f float64) string {
	return fmt.Sprintf("%d", int(f))
}

const percent = '%'

var specifiers = map[rune]string{
	'D': "01/02/06", // month/day/year
	'Y': "2006",     // year four digits
	'y': "06",       // year two digits
	'm': "01",       // month two digits
	'B': "January",  // full month name
	'b': "Jan",      // abreviate month name
	'h': "Jan",      // abreviate month name
	'd': "02",       // day of month
	'e': "_2",       // day of month space padded
	'j': "002",      // day of year
	'A': "Monday",   // full week day name
	'a': "Mon",      // abreviate week day name
	'H': "15",       // hours 00-23
	'I': "03",       // hours 00-12
	'M': "04",       // minute two digits
	'S': "05",       // second two digits
	'p': "PM",
	'T': "15:04:05",
	'F': "2006-01-02",
	'z': "-07:00",
	'R': "15:04",
	'%': "%",
}

func parseFormat(str string) (string, error) {
	var (
		r = strings.NewReader(str)
		w strings.Builder
	)
	for r.Len() > 0 {
		x, _, _ := r.ReadRune()
		if x == utf8.RuneError {
			return "", fmt.Errorf("invalid character found in format string")
		}
		if x != percent {
			w.WriteRune(x)
			continue
		}
		if r.Len() == 0 {
			return "", fmt.Errorf("missing specifier at end of format string")
		}
		x, _, _ = r.ReadRune()
		str, ok := specifiers[x]
		if !ok {
			return "", fmt.Errorf("invalid specifier found %c", x)
		}
		w.WriteString(str)
	}
	return w.String(), nil
}
