package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbromberger/arcoder/encoder"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <name> <name>",
		Short: "Check whether two names are phonetically equivalent",
		Long: `Match encodes both names and reports whether they share at least one
phonetic code under the selected encoder.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := encoder.ByName(activeCfg.Encoder)
			if err != nil {
				return err
			}

			a, b := args[0], args[1]
			match := encoder.Equivalent(enc, prepare(a), prepare(b))

			out := cmd.OutOrStdout()
			if activeCfg.Format == "json" {
				return json.NewEncoder(out).Encode(struct {
					A     string `json:"a"`
					B     string `json:"b"`
					Match bool   `json:"match"`
				}{A: a, B: b, Match: match})
			}
			if match {
				_, err = fmt.Fprintf(out, "%s ~ %s\n", a, b)
			} else {
				_, err = fmt.Fprintf(out, "%s !~ %s\n", a, b)
			}
			return err
		},
	}
}
