package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/explorer/config"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

type options struct {
	configPath string
	logLevel   string
	city       string
	month      string
	day        string
	rows       int
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data",
		Long: `Explore bikeshare trips of Chicago, New York and Washington.

Without --city the explorer asks for the city and the filters interactively.
With --city a single analysis is printed using --month and --day as filters.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explorerConfig, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				explorerConfig.LogLevel = opts.logLevel
			}
			if err := InitLogger(explorerConfig.LogLevel); err != nil {
				return err
			}

			explorer := NewExplorer(explorerConfig, in, out)
			if opts.city != "" {
				return explorer.RunOnce(opts.city, opts.month, opts.day, opts.rows)
			}
			return explorer.Run()
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.ConfigFilepath, "path to the explorer config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overrides the config file")
	flags.StringVar(&opts.city, "city", "", "city to analyze: chicago, new york or washington")
	flags.StringVar(&opts.month, "month", "all", "month filter: all or January to June")
	flags.StringVar(&opts.day, "day", "all", "day filter: all or a day of the week")
	flags.IntVar(&opts.rows, "rows", 0, "amount of raw trips printed after the reports, only with --city")

	return rootCmd
}

func main() {
	if err := InitLogger("info"); err != nil {
		log.Fatalf("%s", err)
	}

	signalChannel := utils.GetSignalChannel()
	go func() {
		sig := <-signalChannel
		log.Infof("[component: %s][status: OK] %s received, bye!", explorerType, sig)
		os.Exit(0)
	}()

	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
