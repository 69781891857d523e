package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bikeshare/loader"
	"bikeshare/utils"
)

var ErrInputClosed = errors.New("input closed")

type promptState int

const (
	prompting promptState = iota
	validated
	rejected
)

// field is a value asked to the user
// + question: text shown when prompting
// + rejection: text shown when the answer is not valid
// + validate: returns the canonical value and whether the answer is valid
type field struct {
	question  string
	rejection string
	validate  func(answer string) (string, bool)
}

// Prompter asks questions until a valid answer is given
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask keeps prompting f until a valid answer arrives. Returns ErrInputClosed if the input ends first.
func (p *Prompter) Ask(f field) (string, error) {
	state := prompting
	var value string
	for {
		switch state {
		case prompting:
			answer, err := p.readAnswer(f.question)
			if err != nil {
				return "", err
			}
			var ok bool
			value, ok = f.validate(answer)
			if ok {
				state = validated
			} else {
				state = rejected
			}
		case rejected:
			fmt.Fprintln(p.out, f.rejection)
			state = prompting
		case validated:
			fmt.Fprintln(p.out, "OK!")
			return value, nil
		}
	}
}

// Confirm asks a yes/no question. Anything other than yes is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.readAnswer(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

func (p *Prompter) readAnswer(question string) (string, error) {
	fmt.Fprint(p.out, question)
	answer, err := p.reader.ReadString('\n')
	if err != nil && (answer == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func cityField(cities []string) field {
	return field{
		question:  "Which city would you like data for: Chicago, New York, or Washington? ",
		rejection: "Sorry, that isn't a valid city.",
		validate: func(answer string) (string, bool) {
			if !utils.ContainsString(answer, cities) {
				return "", false
			}
			return strings.ToLower(strings.TrimSpace(answer)), true
		},
	}
}

const (
	filterByMonth = "month"
	filterByDay   = "day"
	filterNeither = "neither"
)

func filterChoiceField() field {
	return field{
		question:  "Would you like to filter the data by month, day, or neither? ",
		rejection: "Sorry, that isn't a valid filter.",
		validate: func(answer string) (string, bool) {
			if !utils.ContainsString(answer, []string{filterByMonth, filterByDay, filterNeither}) {
				return "", false
			}
			return strings.ToLower(strings.TrimSpace(answer)), true
		},
	}
}

func monthField() field {
	return field{
		question:  "Which month - January, February, March, April, May, or June? ",
		rejection: "Sorry, that isn't a valid month.",
		validate: func(answer string) (string, bool) {
			filter, err := loader.NewFilter(answer, loader.AllFilter)
			if err != nil || !filter.HasMonth() {
				return "", false
			}
			return filter.MonthName(), true
		},
	}
}

func dayField() field {
	return field{
		question:  "Which day - Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, or Sunday? ",
		rejection: "Sorry, that isn't a valid day.",
		validate: func(answer string) (string, bool) {
			filter, err := loader.NewFilter(loader.AllFilter, answer)
			if err != nil || !filter.HasDay() {
				return "", false
			}
			return filter.DayName(), true
		},
	}
}

// AskFilters asks the city and the month or day filter to analyze
func (p *Prompter) AskFilters(cities []string) (string, loader.Filter, error) {
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	city, err := p.Ask(cityField(cities))
	if err != nil {
		return "", loader.Filter{}, err
	}

	choice, err := p.Ask(filterChoiceField())
	if err != nil {
		return "", loader.Filter{}, err
	}

	month, day := loader.AllFilter, loader.AllFilter
	switch choice {
	case filterByMonth:
		month, err = p.Ask(monthField())
	case filterByDay:
		day, err = p.Ask(dayField())
	}
	if err != nil {
		return "", loader.Filter{}, err
	}

	fmt.Fprintln(p.out, separator)
	filter, err := loader.NewFilter(month, day)
	return city, filter, err
}
