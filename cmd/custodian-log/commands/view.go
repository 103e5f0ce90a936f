// Package commands implements the custodian-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wifi-custodian/custodian-go/pkg/log"
)

// ViewOptions holds the view command flags.
type ViewOptions struct {
	Component string
	Category  string
	AttemptID string
}

// Filter converts the flags to a log filter.
func (o ViewOptions) Filter() (log.Filter, error) {
	f := log.Filter{AttemptID: o.AttemptID}

	if o.Component != "" {
		c, ok := log.ParseComponent(strings.ToUpper(o.Component))
		if !ok {
			return f, fmt.Errorf("unknown component %q (store, radio, manager, portal)", o.Component)
		}
		f.Component = &c
	}
	if o.Category != "" {
		c, ok := log.ParseCategory(strings.ToUpper(o.Category))
		if !ok {
			return f, fmt.Errorf("unknown category %q (state, scan, join, request, store, error)", o.Category)
		}
		f.Category = &c
	}
	return f, nil
}

// ViewCmd returns the view command.
func ViewCmd() *cobra.Command {
	var opts ViewOptions

	cmd := &cobra.Command{
		Use:   "view <file.clog>",
		Short: "View log file in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.Filter()
			if err != nil {
				return err
			}
			return RunView(args[0], filter, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Component, "component", "", "Filter by component (store, radio, manager, portal)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category (state, scan, join, request, store, error)")
	cmd.Flags().StringVar(&opts.AttemptID, "attempt", "", "Filter by attempt ID")

	return cmd
}

// RunView prints the events of the log file at path that match filter.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [attempt:%s] %s %s\n", ts, shortenID(event.AttemptID), event.Component, event.Category)

	switch {
	case event.StateChange != nil:
		sc := event.StateChange
		fmt.Fprintf(w, "  %s -> %s", orDash(sc.OldState), sc.NewState)
		if sc.Reason != "" {
			fmt.Fprintf(w, " (%s)", sc.Reason)
		}
		fmt.Fprintln(w)
	case event.Scan != nil:
		if event.Scan.TimedOut {
			fmt.Fprintf(w, "  Timed out after %s\n", formatDuration(event.Scan.Elapsed))
		} else {
			fmt.Fprintf(w, "  Visible: %s (%s)\n", strings.Join(event.Scan.Visible, ", "), formatDuration(event.Scan.Elapsed))
		}
	case event.Join != nil:
		j := event.Join
		slot := fmt.Sprintf("slot %d", j.Slot)
		if j.Slot < 0 {
			slot = "manual"
		}
		fmt.Fprintf(w, "  %s %s [%s]", j.Outcome, j.Network, slot)
		if j.Elapsed > 0 {
			fmt.Fprintf(w, " after %s", formatDuration(j.Elapsed))
		}
		if j.Timeout > 0 {
			fmt.Fprintf(w, " (timeout %s)", formatDuration(j.Timeout))
		}
		fmt.Fprintln(w)
	case event.Request != nil:
		r := event.Request
		fmt.Fprintf(w, "  %s %s -> %d", r.Method, r.Path, r.Status)
		if r.RemoteAddr != "" {
			fmt.Fprintf(w, " from %s", r.RemoteAddr)
		}
		fmt.Fprintln(w)
	case event.Store != nil:
		s := event.Store
		switch s.Op {
		case log.StoreOpAppend:
			fmt.Fprintf(w, "  APPEND %s into slot %d (count %d)\n", s.Network, s.Slot, s.Count)
		case log.StoreOpRejected:
			fmt.Fprintf(w, "  REJECTED %s, store full (count %d)\n", s.Network, s.Count)
		case log.StoreOpReset:
			fmt.Fprintf(w, "  RESET corrupt count %d\n", s.RawCount)
		default:
			fmt.Fprintf(w, "  %s (count %d)\n", s.Op, s.Count)
		}
	case event.Error != nil:
		fmt.Fprintf(w, "  Error: %s", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, " (%s)", event.Error.Context)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of an attempt ID.
func shortenID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatDuration formats d with millisecond precision.
func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
