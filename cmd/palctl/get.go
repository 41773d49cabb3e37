package main

import (
	"context"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server name, version, and description",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
		defer cancel()

		info, err := c.GetInfo(ctx)
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List connected players",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
		defer cancel()

		players, err := c.GetPlayers(ctx)
		if err != nil {
			return err
		}
		return printJSON(players)
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the server's configuration snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
		defer cancel()

		settings, err := c.GetSettings(ctx)
		if err != nil {
			return err
		}
		return printJSON(settings)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show live server performance metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
		defer cancel()

		metrics, err := c.GetMetrics(ctx)
		if err != nil {
			return err
		}
		return printJSON(metrics)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd, playersCmd, settingsCmd, metricsCmd)
}
