package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoitower/pkg/hanoi"
	"github.com/matzehuels/hanoitower/pkg/pipeline"
	"github.com/matzehuels/hanoitower/pkg/session"
)

// playCommand creates the play command for interactive games.
func (c *CLI) playCommand() *cobra.Command {
	var (
		disks  int
		resume string
		noSave bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game interactively in the terminal",
		Long: `Play a game interactively in the terminal.

Pick a source peg and a destination peg with a/b/c (or 1/2/3). Press n to
auto-play the next optimal move, u to undo, and r to restart.

Progress along the optimal solution is saved as a session on quit; resume
it later with --resume. Games that left the optimal line are not saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newSessionStore(cmd)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			sess := (*session.Session)(nil)
			if resume != "" {
				if sess, err = store.Get(cmd.Context(), resume); err != nil {
					return err
				}
				disks = sess.Disks
			}
			if disks > pipeline.MaxDisks {
				return fmt.Errorf("disk count %d exceeds maximum %d", disks, pipeline.MaxDisks)
			}

			model, err := NewPlayModel(disks)
			if err != nil {
				return err
			}
			if sess != nil {
				solution, err := hanoi.Solve(disks, hanoi.PegA, hanoi.PegC, hanoi.PegB)
				if err != nil {
					return err
				}
				if model, err = model.Resume(solution[:sess.MoveIndex]); err != nil {
					return err
				}
			}

			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("run game: %w", err)
			}
			m, ok := final.(PlayModel)
			if !ok {
				return nil
			}
			if noSave {
				return nil
			}
			return c.saveProgress(cmd, store, sess, m)
		},
	}

	cmd.Flags().IntVarP(&disks, "disks", "n", pipeline.DefaultDisks, "number of disks")
	cmd.Flags().StringVar(&resume, "resume", "", "resume a saved session by id")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not save progress on quit")

	return cmd
}

// saveProgress persists the game as a session when the play stayed on the
// optimal line. Finished games delete their session instead.
func (c *CLI) saveProgress(cmd *cobra.Command, store session.Store, sess *session.Session, m PlayModel) error {
	solution, err := hanoi.Solve(m.Disks, hanoi.PegA, hanoi.PegC, hanoi.PegB)
	if err != nil {
		return err
	}
	if !isOptimalPrefix(m.History, solution) {
		if sess != nil {
			printWarning("Game left the optimal line, session %s not updated", sess.ID)
		}
		return nil
	}

	if m.Won {
		if sess != nil {
			if err := store.Delete(cmd.Context(), sess.ID); err != nil {
				return err
			}
			printSuccess("Finished session %s", sess.ID)
		}
		return nil
	}
	if len(m.History) == 0 && sess == nil {
		return nil
	}

	if sess == nil {
		sess = session.New(m.Disks)
	}
	sess.MoveIndex = len(m.History)
	if err := store.Set(cmd.Context(), sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	printSuccess("Saved session at move %d/%d", sess.MoveIndex, hanoi.MoveCount(sess.Disks))
	printNextStep("Resume", "hanoitower play --resume "+sess.ID)
	return nil
}
