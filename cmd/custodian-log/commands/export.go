package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wifi-custodian/custodian-go/pkg/log"
)

// jsonEvent is the JSONL representation of an event, with enum names
// spelled out.
type jsonEvent struct {
	Timestamp   string                `json:"timestamp"`
	AttemptID   string                `json:"attempt_id,omitempty"`
	Component   string                `json:"component"`
	Category    string                `json:"category"`
	StateChange *log.StateChangeEvent `json:"state_change,omitempty"`
	Scan        *log.ScanEvent        `json:"scan,omitempty"`
	Join        *jsonJoin             `json:"join,omitempty"`
	Request     *log.RequestEvent     `json:"request,omitempty"`
	Store       *jsonStore            `json:"store,omitempty"`
	Error       *log.ErrorEventData   `json:"error,omitempty"`
}

type jsonJoin struct {
	Network   string `json:"network"`
	Slot      int    `json:"slot"`
	Outcome   string `json:"outcome"`
	ElapsedMs int64  `json:"elapsed_ms,omitempty"`
	TimeoutMs int64  `json:"timeout_ms,omitempty"`
}

type jsonStore struct {
	Op       string `json:"op"`
	Slot     int    `json:"slot,omitempty"`
	Network  string `json:"network,omitempty"`
	Count    int    `json:"count"`
	RawCount int    `json:"raw_count,omitempty"`
}

// ExportCmd returns the export command.
func ExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file.clog>",
		Short: "Export log file as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return RunExport(args[0], cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			return RunExport(args[0], f)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

// RunExport writes every event of the log file at path to w as JSONL.
func RunExport(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	enc := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := enc.Encode(toJSONEvent(event)); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
	}
}

func toJSONEvent(e log.Event) jsonEvent {
	out := jsonEvent{
		Timestamp:   e.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		AttemptID:   e.AttemptID,
		Component:   e.Component.String(),
		Category:    e.Category.String(),
		StateChange: e.StateChange,
		Scan:        e.Scan,
		Request:     e.Request,
		Error:       e.Error,
	}
	if e.Join != nil {
		out.Join = &jsonJoin{
			Network:   e.Join.Network,
			Slot:      e.Join.Slot,
			Outcome:   e.Join.Outcome.String(),
			ElapsedMs: e.Join.Elapsed.Milliseconds(),
			TimeoutMs: e.Join.Timeout.Milliseconds(),
		}
	}
	if e.Store != nil {
		out.Store = &jsonStore{
			Op:       e.Store.Op.String(),
			Slot:     e.Store.Slot,
			Network:  e.Store.Network,
			Count:    e.Store.Count,
			RawCount: e.Store.RawCount,
		}
	}
	return out
}
