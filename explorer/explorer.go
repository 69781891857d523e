package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/catalog"
	"bikeshare/domain/entities/dataset"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/statistics"
)

const explorerType = "explorer"

// Explorer drives the analysis cycles: it gets the filters, loads the city data,
// prints the reports and pages through the raw trips
type Explorer struct {
	config   *config.ExplorerConfig
	catalog  *catalog.Catalog
	loader   *loader.TripLoader
	prompter *Prompter
	printer  *Printer
	out      io.Writer
}

func NewExplorer(explorerConfig *config.ExplorerConfig, in io.Reader, out io.Writer) *Explorer {
	return &Explorer{
		config:   explorerConfig,
		catalog:  explorerConfig.GetCatalog(),
		loader:   loader.NewTripLoader(explorerConfig.Loader),
		prompter: NewPrompter(in, out),
		printer:  NewPrinter(out),
		out:      out,
	}
}

func getLogMessage(cycleID string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][cycle: %s][method: %s][status: ERROR] %s: %s", explorerType, cycleID, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][cycle: %s][method: %s][status: OK] %s", explorerType, cycleID, method, message)
}

// Run asks for filters and runs analysis cycles until the user doesn't want to restart or the input ends
func (e *Explorer) Run() error {
	for {
		city, filter, err := e.prompter.AskFilters(e.catalog.Cities())
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		filteredDataset, err := e.RunCycle(city, filter)
		if err != nil {
			fmt.Fprintf(e.out, "Sorry, the data could not be analyzed: %s\n", err)
		} else if err := e.paginate(filteredDataset); err != nil {
			if !errors.Is(err, ErrInputClosed) {
				return err
			}
			return nil
		}

		restart, err := e.prompter.Confirm("\nWould you like to restart? Enter yes or no.\n")
		if errors.Is(err, ErrInputClosed) || (err == nil && !restart) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// RunOnce runs a single analysis cycle without prompting and prints the first rows trips
func (e *Explorer) RunOnce(city string, month string, day string, rows int) error {
	filter, err := loader.NewFilter(month, day)
	if err != nil {
		return err
	}

	filteredDataset, err := e.RunCycle(city, filter)
	if err != nil {
		return err
	}

	if rows > 0 {
		e.printer.PrintTrips(filteredDataset.Window(0, rows), 0)
	}
	return nil
}

// RunCycle loads the city data with the filter applied and prints the four reports
func (e *Explorer) RunCycle(city string, filter loader.Filter) (*dataset.FilteredDataset, error) {
	cycleID := uuid.NewString()
	log.Debug(getLogMessage(cycleID, "RunCycle", fmt.Sprintf("starting cycle for %s with filter %s", city, filter), nil))

	resource, err := e.catalog.Resolve(city)
	if err != nil {
		log.Error(getLogMessage(cycleID, "RunCycle", "error resolving city", err))
		return nil, err
	}

	filteredDataset, err := e.loader.Load(resource, filter)
	if err != nil {
		log.Error(getLogMessage(cycleID, "RunCycle", "error loading data", err))
		return nil, err
	}

	if filteredDataset.IsEmpty() {
		log.Warn(getLogMessage(cycleID, "RunCycle", fmt.Sprintf("no trips for %s with filter %s", city, filter), nil))
	}

	e.printReports(cycleID, filteredDataset)
	log.Info(getLogMessage(cycleID, "RunCycle", fmt.Sprintf("%v trips analyzed", filteredDataset.Len()), nil))
	return filteredDataset, nil
}

func (e *Explorer) printReports(cycleID string, filteredDataset *dataset.FilteredDataset) {
	start := time.Now()
	temporalStats := statistics.ComputeTemporalStats(filteredDataset)
	e.printer.PrintSummary(temporalStats.Metadata)
	e.printer.PrintTemporalStats(temporalStats, time.Since(start))

	start = time.Now()
	stationStats := statistics.ComputeStationStats(filteredDataset)
	e.printer.PrintStationStats(stationStats, time.Since(start))

	start = time.Now()
	durationStats, err := statistics.ComputeDurationStats(filteredDataset)
	if err != nil {
		log.Warn(getLogMessage(cycleID, "printReports", "duration stats are undefined", err))
	}
	e.printer.PrintDurationStats(durationStats, time.Since(start))

	start = time.Now()
	userStats := statistics.ComputeUserStats(filteredDataset)
	e.printer.PrintUserStats(userStats, time.Since(start))
}

// paginate shows the trips page by page while the user asks for more
func (e *Explorer) paginate(filteredDataset *dataset.FilteredDataset) error {
	show, err := e.prompter.Confirm("\nWould you like to see the filtered trip data? Enter yes or no.\n")
	if err != nil {
		return err
	}

	cursor := dataset.NewCursor(e.config.PageSize)
	for show {
		trips := cursor.Read(filteredDataset)
		if len(trips) > 0 {
			e.printer.PrintTrips(trips, cursor.Start)
		}
		if cursor.Exhausted(filteredDataset) {
			fmt.Fprintln(e.out, "No more trips to show.")
			return nil
		}

		cursor = cursor.Next()
		show, err = e.prompter.Confirm(fmt.Sprintf("\nWould you like another %d rows? Enter yes or no.\n", cursor.Count))
		if err != nil {
			return err
		}
	}
	return nil
}
