package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateOrToday interpreta a data informada ou retorna o dia atual truncado
func ParseDateOrToday(dateStr string, now time.Time) (time.Time, error) {
	if dateStr == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return *date, nil
}
