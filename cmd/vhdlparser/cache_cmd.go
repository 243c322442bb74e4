package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the parse cache",
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withCache(cmd, func(dir string, _ func() error) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), dir)
			return err
		})
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withCache(cmd, func(dir string, drop func() error) error {
			if err := drop(); err != nil {
				return fmt.Errorf("clearing %s: %w", dir, err)
			}
			quiet, _ := cmd.Flags().GetBool("quiet")
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", dir)
			}
			return nil
		})
	},
}

func init() {
	cacheCmd.AddCommand(cacheDirCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func withCache(cmd *cobra.Command, fn func(dir string, drop func() error) error) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	cache, err := cacheFor(s)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	return fn(cache.Dir(), cache.DropAll)
}
