package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/wifi-custodian/custodian-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByComponent map[log.Component]int
	EventsByCategory  map[log.Category]int
	JoinOutcomes      map[log.JoinOutcome]int
	JoinsByNetwork    map[string]*NetworkStats
	RequestsByPath    map[string]int
	StoreOps          map[log.StoreOp]int
	ScanTimeouts      int
	Errors            int
	FinalState        string
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// NetworkStats holds join statistics for a single network.
type NetworkStats struct {
	Attempts  int
	Succeeded int
	TimedOut  int
	Skipped   int
}

// StatsCmd returns the stats command.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.clog>",
		Short: "Show statistics about the log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunStats(args[0], cmd.OutOrStdout())
		},
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByComponent: make(map[log.Component]int),
		EventsByCategory:  make(map[log.Category]int),
		JoinOutcomes:      make(map[log.JoinOutcome]int),
		JoinsByNetwork:    make(map[string]*NetworkStats),
		RequestsByPath:    make(map[string]int),
		StoreOps:          make(map[log.StoreOp]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByComponent[event.Component]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	switch {
	case event.StateChange != nil:
		s.FinalState = event.StateChange.NewState
	case event.Scan != nil:
		if event.Scan.TimedOut {
			s.ScanTimeouts++
		}
	case event.Join != nil:
		j := event.Join
		s.JoinOutcomes[j.Outcome]++
		n, ok := s.JoinsByNetwork[j.Network]
		if !ok {
			n = &NetworkStats{}
			s.JoinsByNetwork[j.Network] = n
		}
		switch j.Outcome {
		case log.JoinStarted:
			n.Attempts++
		case log.JoinSucceeded:
			n.Succeeded++
		case log.JoinTimedOut:
			n.TimedOut++
		case log.JoinSkipped:
			n.Skipped++
		}
	case event.Request != nil:
		s.RequestsByPath[event.Request.Path]++
	case event.Store != nil:
		s.StoreOps[event.Store.Op]++
	case event.Error != nil:
		s.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Provisioning Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Component:")
	for _, c := range []log.Component{log.ComponentStore, log.ComponentRadio, log.ComponentManager, log.ComponentPortal} {
		if count := stats.EventsByComponent[c]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", c.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, c := range []log.Category{log.CategoryState, log.CategoryScan, log.CategoryJoin, log.CategoryRequest, log.CategoryStore, log.CategoryError} {
		if count := stats.EventsByCategory[c]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", c.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.JoinsByNetwork) > 0 {
		fmt.Fprintf(w, "Networks: %d\n", len(stats.JoinsByNetwork))
		names := make([]string, 0, len(stats.JoinsByNetwork))
		for name := range stats.JoinsByNetwork {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			n := stats.JoinsByNetwork[name]
			fmt.Fprintf(w, "  %-20s %d attempts, %d succeeded, %d timed out, %d skipped\n",
				name, n.Attempts, n.Succeeded, n.TimedOut, n.Skipped)
		}
		fmt.Fprintln(w)
	}

	if stats.ScanTimeouts > 0 {
		fmt.Fprintf(w, "Scan Timeouts: %d\n", stats.ScanTimeouts)
	}

	if len(stats.RequestsByPath) > 0 {
		fmt.Fprintln(w, "Portal Requests:")
		paths := make([]string, 0, len(stats.RequestsByPath))
		for p := range stats.RequestsByPath {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			fmt.Fprintf(w, "  %-12s %d\n", p+":", stats.RequestsByPath[p])
		}
		fmt.Fprintln(w)
	}

	if len(stats.StoreOps) > 0 {
		fmt.Fprintln(w, "Store Operations:")
		for _, op := range []log.StoreOp{log.StoreOpAppend, log.StoreOpWipe, log.StoreOpReset, log.StoreOpRejected} {
			if count := stats.StoreOps[op]; count > 0 {
				fmt.Fprintf(w, "  %-12s %d\n", op.String()+":", count)
			}
		}
		fmt.Fprintln(w)
	}

	if stats.FinalState != "" {
		fmt.Fprintf(w, "Final State: %s\n", stats.FinalState)
	}

	if stats.Errors > 0 {
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
