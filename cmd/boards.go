package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ideaboard/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all boards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openBoards()
		if err != nil {
			return err
		}
		defer s.Close()

		boards, err := s.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(boards) == 0 {
			fmt.Println("no boards yet — create one with `ideaboard new <name>`")
			return nil
		}

		for _, b := range boards {
			fmt.Printf("%-10s  %-30s  %s\n", shortID(b.ID), b.Name, b.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openBoards()
		if err != nil {
			return err
		}
		defer s.Close()

		info, err := s.Create(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("created board %s (%s)\n", info.Name, shortID(info.ID))
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <board>",
	Short: "Delete a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openBoards()
		if err != nil {
			return err
		}
		defer s.Close()

		info, err := findBoard(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}
		if err := s.Delete(cmd.Context(), info.ID); err != nil {
			return err
		}
		fmt.Printf("deleted board %s\n", info.Name)
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <board> <name>",
	Short: "Rename a board",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openBoards()
		if err != nil {
			return err
		}
		defer s.Close()

		info, err := findBoard(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}
		return s.Rename(cmd.Context(), info.ID, args[1])
	},
}

func init() {
	rootCmd.AddCommand(listCmd, newCmd, rmCmd, renameCmd)
}

// findBoard resolves a user-supplied board reference: an exact id, a
// unique id prefix, or an exact name.
func findBoard(ctx context.Context, s *storage.Boards, ref string) (storage.BoardInfo, error) {
	if info, err := s.Get(ctx, ref); err == nil {
		return info, nil
	}

	boards, err := s.List(ctx)
	if err != nil {
		return storage.BoardInfo{}, err
	}

	var matches []storage.BoardInfo
	for _, b := range boards {
		if strings.HasPrefix(b.ID, ref) || b.Name == ref {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return storage.BoardInfo{}, fmt.Errorf("no board matches %q", ref)
	default:
		return storage.BoardInfo{}, fmt.Errorf("%q is ambiguous (%d matches)", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
