package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimestampFormat is returned for layouts that cannot be used to
// format and parse back a timestamp.
var ErrInvalidTimestampFormat = errors.New("invalid timestamp format")

// sampleTime differs from the reference time in every element, so a layout
// renders unchanged only when it contains no element at all.
var sampleTime = time.Date(2001, time.November, 22, 11, 33, 44, 123456789, time.FixedZone("CET", 3600))

// ValidateTimestampFormat checks that layout is a usable Go reference
// layout: it must render at least one time element and the rendered value
// must parse back with the same layout.
func ValidateTimestampFormat(layout string) error {
	if strings.TrimSpace(layout) == "" {
		return fmt.Errorf("%w: layout is empty", ErrInvalidTimestampFormat)
	}

	formatted := sampleTime.Format(layout)
	if formatted == layout {
		return fmt.Errorf("%w: %q contains no reference time elements (see time.Layout)",
			ErrInvalidTimestampFormat, layout)
	}

	if _, err := time.Parse(layout, formatted); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidTimestampFormat, layout, err)
	}

	return nil
}
