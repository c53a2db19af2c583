package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/srgjo27/openspace/internal/core/domain"
	"github.com/srgjo27/openspace/internal/core/services"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printSummary(w io.Writer, result *services.SeatingResult) {
	fmt.Fprintf(w, "Total names: %d | Seated: %d | Unseated: %d\n", result.Total, result.Seated, len(result.Unseated))

	if len(result.Unseated) > 0 {
		noun := "person"
		if len(result.Unseated) > 1 {
			noun = "people"
		}
		fmt.Fprintf(w, "Unseated %s (%s):\n", noun, result.Reason)
		for _, name := range result.Unseated {
			fmt.Fprintf(w, "- %s\n", name)
		}
	}

	fmt.Fprintln(w, "\nRoom layout:")
	fmt.Fprintln(w, result.Room.FormattedLayout())
}

func printArrangement(w io.Writer, a *domain.Arrangement) {
	fmt.Fprintf(w, "Arrangement: %s\n", a.ID)
	fmt.Fprintf(w, "Created At:  %s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Capacity:    %d (%d left)\n", a.Capacity, a.LeftCapacity)
	if len(a.Unseated) > 0 {
		fmt.Fprintf(w, "Unseated:    %d\n", len(a.Unseated))
		for _, name := range a.Unseated {
			fmt.Fprintf(w, "- %s\n", name)
		}
	}

	fmt.Fprintln(w, "\nRoom layout:")
	fmt.Fprintln(w, a.Format())
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
