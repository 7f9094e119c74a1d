package vtype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"
)

// parseDateFields accepts YYYY-MM-DD with a variable-width year: the server
// does not zero-pad years below 1000, and years above 9999 grow the field.
func parseDateFields(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, errors.New("not a date")
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if !isDigits(p) {
			return 0, 0, 0, errors.New("not a date")
		}
		nums[i], err = strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, errors.New("not a date")
		}
	}
	year, month, day = nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, errors.New("date field out of range")
	}
	return year, month, day, nil
}

func decodeDate(s string, t *Type) (Value, error) {
	y, mo, d, err := parseDateFields(s)
	if err != nil {
		return nil, formatError(t, s, err.Error())
	}
	return Date{civil.Date{Year: y, Month: time.Month(mo), Day: d}}, nil
}

func encodeDate(v Date) string {
	return fmt.Sprintf("'%04d-%02d-%02d'", v.Year, int(v.Month), v.Day)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
