package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srgjo27/openspace/internal/adapter/repository/jsonfile"
	"github.com/srgjo27/openspace/internal/adapter/source/csvfile"
	"github.com/srgjo27/openspace/internal/config"
	"github.com/srgjo27/openspace/internal/core/services"
)

var (
	seatTables int
	seatSeats  int
)

var seatCmd = &cobra.Command{
	Use:   "seat [csv-file]",
	Short: "Seat the people listed in a CSV file and save the layout",
	Long: `Seat the people listed in a CSV file (a "Names" column, or a single
column without header) and save the resulting layout next to the file.
When no file is given the path is read from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("tables") {
			cfg.Tables = seatTables
		}
		if cmd.Flags().Changed("seats") {
			cfg.SeatsPerTable = seatSeats
		}

		path, err := sourcePath(cmd, args)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("failed to open names file: %w", err)
		}

		ctx := cmd.Context()
		output := cfg.OutputFile
		if !filepath.IsAbs(output) {
			output = filepath.Join(filepath.Dir(path), output)
		}
		store := jsonfile.NewStore(output)

		rt, err := newRuntime(ctx, cfg, store)
		if err != nil {
			return err
		}
		defer rt.Close()

		result, err := rt.svc.SeatFrom(ctx, csvfile.NewSource(path, cfg.NamesColumn), cfg.Tables, cfg.SeatsPerTable)
		if errors.Is(err, services.ErrNoNames) {
			fmt.Fprintln(cmd.OutOrStdout(), "No names found to seat.")
			return nil
		}
		if err != nil {
			return err
		}

		if rt.usesDB {
			if err := store.Save(ctx, result.Arrangement); err != nil {
				return err
			}
		}

		if err := rememberState(store.Path()); err != nil {
			log.Printf("failed to remember state file: %v", err)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), result)
		}

		printSummary(cmd.OutOrStdout(), result)
		fmt.Fprintf(cmd.OutOrStdout(), "\nOpenSpace state saved to %s\n", store.Path())
		return nil
	},
}

func init() {
	seatCmd.Flags().IntVar(&seatTables, "tables", 0, "number of tables (overrides config)")
	seatCmd.Flags().IntVar(&seatSeats, "seats", 0, "seats per table (overrides config)")
}

// sourcePath returns the CSV path from args, prompting on stdin otherwise.
func sourcePath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	fmt.Fprint(cmd.OutOrStdout(), "Enter path to CSV file (with a 'Names' column or a single-column list): ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no input provided")
	}
	return path, nil
}
