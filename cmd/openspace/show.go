package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/srgjo27/openspace/internal/adapter/repository/jsonfile"
	"github.com/srgjo27/openspace/internal/config"
)

var showFile string

var showCmd = &cobra.Command{
	Use:   "show <id|latest>",
	Short: "Show a saved arrangement",
	Long: `Show a saved arrangement by id. "latest" resolves to the most recently
cached arrangement, or to the one in the local JSON file when no cache is
configured. Without --file the JSON file last written by seat is read.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		store := jsonfile.NewStore(statePath(cfg, showFile))

		rt, err := newRuntime(ctx, cfg, store)
		if err != nil {
			return err
		}
		defer rt.Close()

		id := args[0]
		if id == "latest" {
			switch {
			case rt.cache != nil:
				latest, err := rt.cache.Latest(ctx)
				if err != nil {
					return errors.New("no cached arrangement found")
				}
				id = latest.String()
			case !rt.usesDB:
				a, err := store.Load(ctx)
				if err != nil {
					return err
				}
				id = a.ID.String()
			default:
				return errors.New(`"latest" needs a cache or a local JSON file`)
			}
		}

		a, err := rt.svc.GetArrangement(ctx, id)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), a)
		}

		printArrangement(cmd.OutOrStdout(), a)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showFile, "file", "", "JSON state file to read (default: the one last written by seat)")
}
