// Package shell runs the interactive menu loop. Every operation failure is
// caught here, rendered as a labeled message and followed by the menu
// again; only the explicit exit choice (or EOF) leaves the loop.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"tripclock/cmd/cli/config"
	"tripclock/internal/format"
	"tripclock/internal/parse"
	"tripclock/internal/timezone"
	"tripclock/internal/tripclock"
)

type handler struct {
	label string
	run   func(ctx context.Context) error
}

type Shell struct {
	di       *tripclock.Tripclock
	scanner  *bufio.Scanner
	options  []string
	dispatch map[string]handler
}

func NewShell(di *tripclock.Tripclock) *Shell {
	s := &Shell{
		di:      di,
		scanner: bufio.NewScanner(di.Console.Stdin),
	}

	s.options = []string{"1", "2", "3", "4", "5", "6", "7"}
	s.dispatch = map[string]handler{
		"1": {label: "Current UTC time", run: s.currentUTC},
		"2": {label: "Current time in a timezone", run: s.currentInZone},
		"3": {label: "Convert a timestamp to another timezone", run: s.convert},
		"4": {label: "Format a timestamp", run: s.formatTimestamp},
		"5": {label: "Time difference between two timezones", run: s.difference},
		"6": {label: "Times around the world", run: s.worldTimes},
		"7": {label: "Flight planner", run: s.planFlight},
	}

	return s
}

// Run loops menu -> input -> dispatch -> result/error -> menu until the
// user exits. It never returns a non-nil error for bad user input.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("\n===== TRIPCLOCK - TRAVEL TIME PLANNER =====\n")

	for {
		s.printMenu()

		choice, err := s.prompt("Enter your choice: ")

		if err != nil {
			// EOF on stdin counts as an exit request.
			s.di.Logger.DebugContext(ctx, "shell: input closed")
			return nil
		}

		if choice == "0" {
			s.printf("\nGoodbye!\n")
			return nil
		}

		h, ok := s.dispatch[choice]

		if !ok {
			s.printf("\nInvalid choice %q. Please enter a number between 0 and %d.\n", choice, len(s.options))
			continue
		}

		s.di.Logger.DebugContext(ctx, "shell: dispatching", slog.String("choice", choice), slog.String("label", h.label))

		if err := h.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				s.di.Logger.DebugContext(ctx, "shell: input closed mid-operation")
				return nil
			}

			s.printf("\nError: %v\n", err)
		}
	}
}

func (s *Shell) printMenu() {
	s.printf("\nSelect an option:\n")
	for _, opt := range s.options {
		s.printf("%s. %s\n", opt, s.dispatch[opt].label)
	}
	s.printf("0. Exit\n\n")
}

func (s *Shell) printf(msg string, args ...any) {
	fmt.Fprintf(s.di.Console.Stdout, msg, args...)
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.di.Console.Stdout, label)

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("shell: could not read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *Shell) currentUTC(_ context.Context) error {
	now := timezone.NowUTC(s.di.Clock)

	out, err := format.Render(now, format.PatternDisplay)

	if err != nil {
		return err
	}

	s.printf("\nCurrent UTC time: %s\n", out)

	return nil
}

func (s *Shell) currentInZone(_ context.Context) error {
	zone, err := s.prompt("Timezone (e.g. Europe/London): ")

	if err != nil {
		return err
	}

	now, err := timezone.NowIn(s.di.Clock, zone)

	if err != nil {
		return err
	}

	out, err := format.Render(now, format.PatternDisplay)

	if err != nil {
		return err
	}

	s.printf("\nCurrent time in %s: %s\n", zone, out)

	return nil
}

func (s *Shell) convert(_ context.Context) error {
	instant, sourceZone, err := s.promptInstant()

	if err != nil {
		return err
	}

	targetZone, err := s.prompt("Target timezone: ")

	if err != nil {
		return err
	}

	converted, err := timezone.Convert(instant, targetZone)

	if err != nil {
		return err
	}

	s.printf("\n%s in %s is %s in %s\n", instant, sourceZone, converted, targetZone)

	return nil
}

func (s *Shell) formatTimestamp(_ context.Context) error {
	instant, _, err := s.promptInstant()

	if err != nil {
		return err
	}

	choice, err := s.prompt(fmt.Sprintf("Preset (%s) or pattern (e.g. %%F %%R): ", strings.Join(s.di.Formatter.Presets(), ", ")))

	if err != nil {
		return err
	}

	out, err := s.di.Formatter.Format(instant, choice)

	if err != nil {
		return err
	}

	s.printf("\nFormatted: %s\n", out)

	return nil
}

func (s *Shell) difference(ctx context.Context) error {
	zone1, err := s.prompt("First timezone: ")

	if err != nil {
		return err
	}

	zone2, err := s.prompt("Second timezone: ")

	if err != nil {
		return err
	}

	diff, err := timezone.Diff(zone1, zone2, timezone.NowUTC(s.di.Clock))

	if err != nil {
		return err
	}

	s.di.Logger.DebugContext(ctx, "shell: diff computed",
		slog.String("zone1", zone1),
		slog.String("zone2", zone2),
		slog.Int("sign", diff.Sign))

	s.printf("\nTime difference: %s\n", diff)

	return nil
}

func (s *Shell) worldTimes(ctx context.Context) error {
	s.printf("\n----- CURRENT TIMES AROUND THE WORLD -----\n")

	for _, city := range s.di.Config.Cities {
		now, err := timezone.NowIn(s.di.Clock, city.Zone)

		if err != nil {
			s.di.Logger.WarnContext(ctx, "shell: skipping catalog city", slog.String("city", city.Name), slog.Any("error", err))
			s.printf("%s: unavailable (%v)\n", city.Name, err)
			continue
		}

		out, err := s.di.Formatter.Format(now, city.Preset)

		if err != nil {
			return err
		}

		s.printf("%s: %s\n", city.Name, out)
	}

	return nil
}

func (s *Shell) planFlight(_ context.Context) error {
	s.printf("\n----- FLIGHT PLANNER -----\n\nAvailable cities:\n")

	for i, city := range s.di.Config.Cities {
		s.printf("%d. %s\n", i+1, city.Name)
	}

	departure, err := s.promptCity("\nDeparture city (number): ")

	if err != nil {
		return err
	}

	arrival, err := s.promptCity("Arrival city (number): ")

	if err != nil {
		return err
	}

	date, err := s.prompt("Departure date (YYYY-MM-DD): ")

	if err != nil {
		return err
	}

	wall, err := s.prompt("Departure time (HH:MM, 24-hour): ")

	if err != nil {
		return err
	}

	departureAt, err := parse.Wall(date, wall, departure.Zone)

	if err != nil {
		return err
	}

	durationInput, err := s.prompt("Flight duration in hours (e.g. 8.5): ")

	if err != nil {
		return err
	}

	hours, err := strconv.ParseFloat(durationInput, 64)

	if err != nil || hours < 0 {
		return fmt.Errorf("shell: invalid flight duration %q, expected hours like 8.5", durationInput)
	}

	inFlight := time.Duration(hours * float64(time.Hour))

	arrivalAt, err := departureAt.Add(inFlight)

	if err != nil {
		return err
	}

	arrivalAt, err = timezone.Convert(arrivalAt, arrival.Zone)

	if err != nil {
		return err
	}

	diff, err := timezone.Diff(arrival.Zone, departure.Zone, departureAt)

	if err != nil {
		return err
	}

	departureOut, err := s.di.Formatter.Format(departureAt, departure.Preset)

	if err != nil {
		return err
	}

	arrivalOut, err := s.di.Formatter.Format(arrivalAt, arrival.Preset)

	if err != nil {
		return err
	}

	s.printf("\n----- FLIGHT DETAILS -----\n")
	s.printf("Flight: %s to %s\n", departure.Name, arrival.Name)
	s.printf("Departure: %s\n", departureOut)
	s.printf("Arrival: %s\n", arrivalOut)
	s.printf("Time difference: %s\n", diff)

	return nil
}

func (s *Shell) promptCity(label string) (config.City, error) {
	input, err := s.prompt(label)

	if err != nil {
		return config.City{}, err
	}

	index, err := strconv.Atoi(input)

	if err != nil {
		return config.City{}, fmt.Errorf("shell: invalid city number %q", input)
	}

	return s.di.Config.FindCity(index)
}

func (s *Shell) promptInstant() (timezone.Instant, string, error) {
	date, err := s.prompt("Date (YYYY-MM-DD): ")

	if err != nil {
		return timezone.Instant{}, "", err
	}

	wall, err := s.prompt("Time (HH:MM, 24-hour): ")

	if err != nil {
		return timezone.Instant{}, "", err
	}

	zone, err := s.prompt("Timezone of that timestamp: ")

	if err != nil {
		return timezone.Instant{}, "", err
	}

	instant, err := parse.Wall(date, wall, zone)

	if err != nil {
		return timezone.Instant{}, "", err
	}

	return instant, zone, nil
}
