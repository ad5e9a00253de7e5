package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <board>",
	Short: "Write a board's snapshot to stdout or a file",
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
		b, err := s.LoadSnapshot(cmd.Context(), info.ID)
		if err != nil {
			return err
		}

		var data []byte
		switch exportFormat {
		case "json":
			data, err = json.MarshalIndent(b, "", "  ")
		case "yaml":
			data, err = yaml.Marshal(b)
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("encoding board: %w", err)
		}

		if exportOut == "" || exportOut == "-" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		return os.WriteFile(exportOut, data, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
