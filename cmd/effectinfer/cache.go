package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/specterlang/effectcore/internal/cache"
	"github.com/specterlang/effectcore/internal/config"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or reset the memoized-scheme cache",
	}
	cmd.AddCommand(cacheStatsCmd())
	cmd.AddCommand(cacheClearCmd())
	return cmd
}

func cacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print how many schemes are cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(configPath)
			if err != nil {
				return err
			}
			store, err := cache.Open(settings.Cache.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Stats()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s cached scheme(s)\n", settings.Cache.Path, humanize.Comma(int64(n)))
			return nil
		},
	}
}

func cacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached scheme",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(configPath)
			if err != nil {
				return err
			}
			store, err := cache.Open(settings.Cache.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: cleared\n", settings.Cache.Path)
			return nil
		},
	}
}
