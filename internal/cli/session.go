package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoitower/pkg/hanoi"
)

// sessionCommand creates the session management command.
func (c *CLI) sessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage saved play-throughs",
	}

	cmd.AddCommand(c.sessionListCommand())
	cmd.AddCommand(c.sessionShowCommand())
	cmd.AddCommand(c.sessionDeleteCommand())

	return cmd
}

// sessionListCommand creates the "session list" subcommand.
func (c *CLI) sessionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newSessionStore(cmd)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			sessions, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				printInfo("No saved sessions")
				return nil
			}
			for _, s := range sessions {
				fmt.Printf("  %s  %s\n", StyleValue.Render(s.ID),
					StyleDim.Render(fmt.Sprintf("%d disks, move %d/%d, updated %s",
						s.Disks, s.MoveIndex, hanoi.MoveCount(s.Disks),
						s.UpdatedAt.Local().Format("Jan 2 15:04"))))
			}
			return nil
		},
	}
}

// sessionShowCommand creates the "session show" subcommand.
func (c *CLI) sessionShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one session and its board state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newSessionStore(cmd)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			sess, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			state, err := sess.State()
			if err != nil {
				return err
			}

			printKeyValue("id", sess.ID)
			printKeyValue("disks", fmt.Sprintf("%d", sess.Disks))
			printKeyValue("move", fmt.Sprintf("%d/%d", sess.MoveIndex, hanoi.MoveCount(sess.Disks)))
			printKeyValue("updated", sess.UpdatedAt.Local().Format("Jan 2 15:04:05"))
			printNewline()
			printBoardSummary(state)
			printNewline()
			printNextStep("Resume", "hanoitower play --resume "+sess.ID)
			return nil
		},
	}
}

// sessionDeleteCommand creates the "session delete" subcommand.
func (c *CLI) sessionDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id...]",
		Short: "Delete saved sessions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newSessionStore(cmd)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			for _, id := range args {
				if err := store.Delete(cmd.Context(), id); err != nil {
					return err
				}
			}
			printSuccess("Deleted %d session(s)", len(args))
			return nil
		},
	}
}

// printBoardSummary prints one line per peg with the disk sizes bottom-up.
func printBoardSummary(state hanoi.GameState) {
	for p := hanoi.PegA; p < hanoi.NumPegs; p++ {
		sizes := "—"
		if len(state[p]) > 0 {
			sizes = ""
			for i, d := range state[p] {
				if i > 0 {
					sizes += " "
				}
				sizes += fmt.Sprintf("%d", d.Size)
			}
		}
		printKeyValue("peg "+p.Label(), sizes)
	}
}
