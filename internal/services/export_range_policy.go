package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ParseDateRange reads optional from/to query values. Either bound may be empty.
func ParseDateRange(rawFrom string, rawTo string, location *time.Location) (*time.Time, *time.Time, error) {
	var from *time.Time
	if strings.TrimSpace(rawFrom) != "" {
		parsed, err := ParseDay(rawFrom, location)
		if err != nil {
			return nil, nil, ErrExportFromDateInvalid
		}
		from = &parsed
	}

	var to *time.Time
	if strings.TrimSpace(rawTo) != "" {
		parsed, err := ParseDay(rawTo, location)
		if err != nil {
			return nil, nil, ErrExportToDateInvalid
		}
		to = &parsed
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrExportRangeInvalid
	}
	return from, to, nil
}
