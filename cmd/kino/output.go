package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"kino/internal/batch"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// wantsTable reports whether stdout is an interactive terminal.
func wantsTable(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printSummary(cmd *cobra.Command, summary batch.Summary, jsonOut bool) error {
	if jsonOut || !wantsTable(cmd.OutOrStdout()) {
		return writeJSON(cmd, summary)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
	return nil
}

func renderSummary(summary batch.Summary) string {
	rows := [][]string{
		{"Run ID", summary.RunID},
		{"Kind", summary.Kind},
		{"Requested", strconv.Itoa(summary.Requested)},
		{"Unmatched", strconv.Itoa(summary.Unmatched)},
		{"Resolved", strconv.Itoa(summary.Resolved)},
		{"Accepted", strconv.Itoa(summary.Accepted)},
	}
	for _, reason := range sortedKeys(summary.Rejected) {
		rows = append(rows, []string{"Rejected (" + reason + ")", strconv.Itoa(summary.Rejected[reason])})
	}
	rows = append(rows,
		[]string{"Upstream errors", strconv.Itoa(summary.UpstreamErrors)},
		[]string{"Output", summary.Output},
		[]string{"Duration", summary.Duration.Round(time.Millisecond).String()},
	)
	return tableView{
		title:   "kino " + summary.Kind + " run",
		headers: []string{"Field", "Value"},
		rows:    rows,
		numeric: []int{1},
	}.render()
}
