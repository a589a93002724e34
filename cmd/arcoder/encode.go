package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sbromberger/arcoder/encoder"
	"github.com/sbromberger/arcoder/normalize"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [name...]",
		Short: "Encode names into phonetic codes",
		Long: `Encode prints the phonetic code(s) for each name. Names are taken
from the arguments, or read one per line from stdin when no arguments
are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := encoder.ByName(activeCfg.Encoder)
			if err != nil {
				return err
			}

			names, err := collectNames(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				codes := enc.Encode(prepare(name))
				if err := printCodes(out, name, codes); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// collectNames returns the positional arguments, or the non-empty
// lines of r when there are none.
func collectNames(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading names: %w", err)
	}
	return names, nil
}

// prepare applies the configured opt-in mark folding.
func prepare(name string) string {
	if activeCfg.FoldMarks {
		return normalize.StripMarks(name)
	}
	return name
}

func printCodes(w io.Writer, name string, codes []string) error {
	if activeCfg.Format == "json" {
		return json.NewEncoder(w).Encode(struct {
			Name  string   `json:"name"`
			Codes []string `json:"codes"`
		}{Name: name, Codes: codes})
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(codes, " "))
	return err
}
