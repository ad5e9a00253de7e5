package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ideaboard/board"
	"ideaboard/canvas"
	"ideaboard/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit <board>",
	Short: "Open a board in the interactive editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openBoards()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		info, err := findBoard(ctx, s, args[0])
		if err != nil {
			return err
		}
		loaded, err := s.LoadSnapshot(ctx, info.ID)
		if err != nil {
			return err
		}

		store := editor.NewStore(cfg.HistoryLimit)
		store.SetPlacementStep(cfg.PlacementStep)
		store.SetBoard(loaded)

		// Persistence is fire-and-forget: a failed save is logged, never
		// surfaced into the editing session, and local state stays as-is.
		store.OnChange(func(b *board.Board) {
			if err := s.SaveSnapshot(ctx, info.ID, b); err != nil {
				log.Warn("snapshot save failed",
					zap.String("board", info.ID), zap.Error(err))
			}
		})

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing terminal: %w", err)
		}
		defer screen.Fini()

		return canvas.NewView(screen, store, log, info.Name).Run()
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
