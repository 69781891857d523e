package loader

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AllFilter is the filter value that disables a month or day filter
const AllFilter = "all"

// Months that can be used as month filter. The datasets only contain trips from January to June.
var Months = []string{"January", "February", "March", "April", "May", "June"}

// Days that can be used as day filter
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var filterValidator = validator.New()

// Filter month and day selection applied to a city dataset.
// + Month: "all" or one of Months
// + Day: "all" or one of Days
//
// The zero value applies no filter.
type Filter struct {
	Month string `validate:"omitempty,oneof=all january february march april may june"`
	Day   string `validate:"omitempty,oneof=all monday tuesday wednesday thursday friday saturday sunday"`
}

// NewFilter validates month and day (case-insensitive) and returns a Filter with canonical values.
// An error wrapping ErrInvalidFilter is returned if any of them is not recognized.
func NewFilter(month string, day string) (Filter, error) {
	filter := Filter{
		Month: normalize(month),
		Day:   normalize(day),
	}
	if err := filter.Validate(); err != nil {
		return Filter{}, err
	}

	return Filter{
		Month: canonical(filter.Month, Months),
		Day:   canonical(filter.Day, Days),
	}, nil
}

// Validate returns an error wrapping ErrInvalidFilter if Month or Day are not recognized
func (f Filter) Validate() error {
	normalized := Filter{Month: normalize(f.Month), Day: normalize(f.Day)}
	err := filterValidator.Struct(normalized)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		fieldError := validationErrors[0]
		return fmt.Errorf("%w: %s %q is not recognized", ErrInvalidFilter, strings.ToLower(fieldError.Field()), fieldError.Value())
	}
	return fmt.Errorf("%w: %s", ErrInvalidFilter, err)
}

// MonthNumber returns the month number (1-6) of the filter, or 0 if there is no month filter
func (f Filter) MonthNumber() int {
	month := normalize(f.Month)
	for idx, name := range Months {
		if strings.ToLower(name) == month {
			return idx + 1
		}
	}
	return 0
}

func (f Filter) HasMonth() bool {
	return f.MonthNumber() != 0
}

func (f Filter) HasDay() bool {
	day := normalize(f.Day)
	return day != "" && day != AllFilter
}

// MonthName returns the canonical month filter, "all" if there is none
func (f Filter) MonthName() string {
	if !f.HasMonth() {
		return AllFilter
	}
	return Months[f.MonthNumber()-1]
}

// DayName returns the canonical day filter, "all" if there is none
func (f Filter) DayName() string {
	if !f.HasDay() {
		return AllFilter
	}
	return canonical(normalize(f.Day), Days)
}

// matches returns true if the trip month and day pass the filter
func (f Filter) matches(month int, dayOfWeek string) bool {
	if f.HasMonth() && month != f.MonthNumber() {
		return false
	}
	if f.HasDay() && !strings.EqualFold(dayOfWeek, f.DayName()) {
		return false
	}
	return true
}

func (f Filter) String() string {
	return fmt.Sprintf("month: %s, day: %s", f.MonthName(), f.DayName())
}

func canonical(value string, names []string) string {
	for _, name := range names {
		if strings.ToLower(name) == value {
			return name
		}
	}
	return AllFilter
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
