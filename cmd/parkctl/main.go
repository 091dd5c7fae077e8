package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fail("%s", err)
		os.Exit(1)
	}
}

func run() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	rootCmd := &cobra.Command{
		Use:   "parkctl",
		Short: "Parking lot management console",
		Long: `parkctl administers a parking lot backend from the terminal:
vehicle registration, entry and exit logging, user listings,
payment intents and monthly reports.

Sign in once with 'parkctl login'; the session survives restarts
until you sign out or the backend expires it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		loginCmd(a),
		signupCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		vehiclesCmd(a),
		registersCmd(a),
		usersCmd(a),
		reportsCmd(a),
		paymentsCmd(a),
		payCmd(a),
		dashboardCmd(a),
		versionCmd(),
	)

	return rootCmd.Execute()
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(parsed).With().Timestamp().Logger()
}

func displayBanner() {
	banner := figure.NewFigure("parkctl", "cybermedium", true)
	banner.Print()
	fmt.Println()
}

// prompt reads one line from stdin after printing the label.
func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("\033[36m→\033[0m %s\n", fmt.Sprintf(format, args...))
}

// fail prints an error message to stderr.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", fmt.Sprintf(format, args...))
}
