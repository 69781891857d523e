package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_RepromptsUntilValid(t *testing.T) {
	out := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader("toronto\n\nNew York\n"), out)

	city, err := prompter.Ask(cityField([]string{"chicago", "new york", "washington"}))

	require.NoError(t, err)
	assert.Equal(t, "new york", city)
	assert.Equal(t, 2, strings.Count(out.String(), "Sorry, that isn't a valid city."))
	assert.Equal(t, 3, strings.Count(out.String(), "Which city would you like data for"))
	assert.Contains(t, out.String(), "OK!")
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("sunday"), &bytes.Buffer{})

	day, err := prompter.Ask(dayField())

	require.NoError(t, err)
	assert.Equal(t, "Sunday", day)
}

func TestAsk_InputClosed(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("July\n"), &bytes.Buffer{})

	_, err := prompter.Ask(monthField())

	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestAskFilters(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedCity  string
		expectedMonth string
		expectedDay   string
	}{
		{name: "month", input: "chicago\nmonth\nfebruary\n", expectedCity: "chicago", expectedMonth: "February", expectedDay: "all"},
		{name: "day", input: "washington\nDAY\nfunday\nsaturday\n", expectedCity: "washington", expectedMonth: "all", expectedDay: "Saturday"},
		{name: "neither", input: "new york\nyear\nneither\n", expectedCity: "new york", expectedMonth: "all", expectedDay: "all"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prompter := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})

			city, filter, err := prompter.AskFilters([]string{"chicago", "new york", "washington"})

			require.NoError(t, err)
			assert.Equal(t, tc.expectedCity, city)
			assert.Equal(t, tc.expectedMonth, filter.MonthName())
			assert.Equal(t, tc.expectedDay, filter.DayName())
		})
	}
}

func TestConfirm(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("YES\nnope\n"), &bytes.Buffer{})

	first, err := prompter.Confirm("more? ")
	require.NoError(t, err)
	second, err := prompter.Confirm("more? ")
	require.NoError(t, err)
	_, err = prompter.Confirm("more? ")

	assert.True(t, first)
	assert.False(t, second)
	assert.ErrorIs(t, err, ErrInputClosed)
}
