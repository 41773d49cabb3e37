package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/palworld"
)

var (
	actionMessage    string
	shutdownWaitTime int
)

// runAction wires the shared client/context boilerplate for the
// action-only commands.
func runAction(cmd *cobra.Command, fn func(ctx context.Context, c *palworld.Client) error) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
	defer cancel()

	return fn(ctx, c)
}

var announceCmd = &cobra.Command{
	Use:   "announce <message>...",
	Short: "Broadcast a message to all connected players",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(ctx context.Context, c *palworld.Client) error {
			return c.Announce(ctx, strings.Join(args, " "))
		})
	},
}

var kickCmd = &cobra.Command{
	Use:   "kick <userid>",
	Short: "Kick a player from the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(ctx context.Context, c *palworld.Client) error {
			return c.Kick(ctx, args[0], actionMessage)
		})
	},
}

var banCmd = &cobra.Command{
	Use:   "ban <userid>",
	Short: "Ban a player from the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(ctx context.Context, c *palworld.Client) error {
			return c.Ban(ctx, args[0], actionMessage)
		})
	},
}

var unbanCmd = &cobra.Command{
	Use:   "unban <userid>",
	Short: "Lift a player's ban",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(ctx context.Context, c *palworld.Client) error {
			return c.Unban(ctx, args[0])
		})
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the world state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(ctx context.Context, c *palworld.Client) error {
			return c.Save(ctx)
		})
	},
}

var shutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Schedule a graceful server shutdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(ctx context.Context, c *palworld.Client) error {
			return c.Shutdown(ctx, shutdownWaitTime, actionMessage)
		})
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the server immediately, without saving",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(ctx context.Context, c *palworld.Client) error {
			return c.Stop(ctx)
		})
	},
}

func init() {
	kickCmd.Flags().StringVar(&actionMessage, "message", "", "message shown to the player")
	banCmd.Flags().StringVar(&actionMessage, "message", "", "message shown to the player")
	shutdownCmd.Flags().StringVar(&actionMessage, "message", "", "message broadcast before shutdown")
	shutdownCmd.Flags().IntVar(&shutdownWaitTime, "waittime", 30, "seconds to wait before shutting down")

	rootCmd.AddCommand(announceCmd, kickCmd, banCmd, unbanCmd, saveCmd, shutdownCmd, stopCmd)
}
