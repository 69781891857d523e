package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
	"bikeshare/statistics"
)

const undefined = "undefined (no trips match the filter)"

var separator = strings.Repeat("-", 40)

// Printer renders the reports of an analysis cycle
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintSummary prints which trips the reports below were computed from
func (p *Printer) PrintSummary(metadata entities.Metadata) {
	fmt.Fprintf(p.out, "\nAnalyzing %d trips of %s (%s)\n", metadata.GetRecords(), metadata.GetCity(), metadata.GetFilter())
	fmt.Fprintln(p.out, separator)
}

func (p *Printer) PrintTemporalStats(report statistics.TemporalStats, took time.Duration) {
	fmt.Fprint(p.out, "\nCalculating The Most Frequent Times of Travel...\n\n")
	fmt.Fprintln(p.out, "The most common month is:", formatMode(report.MostCommonMonth))
	fmt.Fprintln(p.out, "The most common day of the week is:", formatMode(report.MostCommonDayOfWeek))
	if report.MostCommonHour == nil {
		fmt.Fprintln(p.out, "The most common hour of the day is:", undefined)
	} else {
		fmt.Fprintln(p.out, "The most common hour of the day is:", report.MostCommonHour.Value, "- with", report.MostCommonHour.Count, "trips.")
	}
	p.printFooter(took)
}

func (p *Printer) PrintStationStats(report statistics.StationStats, took time.Duration) {
	fmt.Fprint(p.out, "\nCalculating The Most Popular Stations and Trip...\n\n")
	fmt.Fprintln(p.out, "Most Common Start Station:", formatMode(report.MostCommonStartStation))
	fmt.Fprintln(p.out, "Most Common End Station:", formatMode(report.MostCommonEndStation))
	if report.MostCommonTrip == nil {
		fmt.Fprintln(p.out, "Most Common trip from start to end:", undefined)
	} else {
		fmt.Fprintln(p.out, "Most Common trip from start to end:", report.MostCommonTrip.Value, "- with", report.MostCommonTripCount(), "trips.")
	}
	if report.MostCommonTripDistance != nil {
		fmt.Fprintf(p.out, "Distance of the most common trip: %.2f km\n", *report.MostCommonTripDistance)
	}
	if report.AverageTripDistance != nil {
		fmt.Fprintf(p.out, "Average distance between stations: %.2f km\n", *report.AverageTripDistance)
	}
	p.printFooter(took)
}

func (p *Printer) PrintDurationStats(report statistics.DurationStats, took time.Duration) {
	fmt.Fprint(p.out, "\nCalculating Trip Duration...\n\n")
	fmt.Fprintln(p.out, "Total travel time: ", formatSeconds(report.TotalDuration))
	average, err := report.Average()
	if err != nil {
		fmt.Fprintln(p.out, "Avg travel time: ", undefined)
	} else {
		fmt.Fprintln(p.out, "Avg travel time: ", formatSeconds(average))
	}
	if report.MinDuration != nil && report.MaxDuration != nil {
		fmt.Fprintln(p.out, "Shortest trip: ", formatSeconds(*report.MinDuration))
		fmt.Fprintln(p.out, "Longest trip: ", formatSeconds(*report.MaxDuration))
	}
	p.printFooter(took)
}

func (p *Printer) PrintUserStats(report statistics.UserStats, took time.Duration) {
	fmt.Fprint(p.out, "\nCalculating User Stats...\n\n")
	fmt.Fprintln(p.out, "Count of user types:")
	p.printCounts(report.UserTypeCounts)

	if report.HasGenderData {
		fmt.Fprintln(p.out, "Count of user gender:")
		p.printCounts(report.GenderCounts)
	} else {
		fmt.Fprintln(p.out, "No gender data for this city.")
	}

	switch {
	case !report.HasBirthYearData:
		fmt.Fprintln(p.out, "No birth year data for this city.")
	case report.BirthYears == nil:
		fmt.Fprintln(p.out, "Birth statistics:", undefined)
	default:
		fmt.Fprintln(p.out, "Birth statistics:")
		fmt.Fprintln(p.out, "Earliest year of birth:", report.BirthYears.Earliest)
		fmt.Fprintln(p.out, "Most recent year of birth:", report.BirthYears.Latest)
		fmt.Fprintln(p.out, "Most common year of birth:", report.BirthYears.MostCommon.Value)
	}
	p.printFooter(took)
}

// PrintTrips renders trips as a table, the first column is the position of the trip in the dataset
func (p *Printer) PrintTrips(trips []trip.TripRecord, offset int) {
	writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "\tStart Time\tEnd Time\tTrip Duration\tStart Station\tEnd Station\tUser Type\tGender\tBirth Year")
	for idx, record := range trips {
		birthYear := ""
		if record.HasBirthYear() {
			birthYear = fmt.Sprintf("%d", record.BirthYear)
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%g\t%s\t%s\t%s\t%s\t%s\n",
			offset+idx,
			record.StartTime.Format(time.DateTime),
			record.EndTime,
			record.TripDuration,
			record.StartStation,
			record.EndStation,
			record.UserType,
			record.Gender,
			birthYear,
		)
	}
	p.flush(writer)
}

func (p *Printer) printCounts(counts map[string]int) {
	if len(counts) == 0 {
		fmt.Fprintln(p.out, "  ", undefined)
		return
	}

	// most frequent first, like a value count
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, label := range labels {
		fmt.Fprintf(writer, "  %s\t%d\n", label, counts[label])
	}
	p.flush(writer)
}

func (p *Printer) flush(writer *tabwriter.Writer) {
	if err := writer.Flush(); err != nil {
		log.Errorf("[component: %s][method: flush][status: ERROR] error writing table: %s", explorerType, err)
	}
}

func (p *Printer) printFooter(took time.Duration) {
	fmt.Fprintf(p.out, "\nThis took %v seconds.\n", took.Seconds())
	fmt.Fprintln(p.out, separator)
}

func formatMode(mode *tripcounter.Mode[string]) string {
	if mode == nil {
		return undefined
	}
	return mode.Value
}

func formatSeconds(seconds float64) string {
	duration := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%g seconds (%s)", seconds, duration)
}
