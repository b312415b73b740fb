package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"stegamoji/internal/stego/tag"
	"stegamoji/internal/stego/zwc"
)

// inspect <text>: report invisible code points hiding in <text>.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <text>",
		Short: "Report invisible code points in a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := args[0]

			digits, tagTerm := tag.Census(s)
			bits, zwTerm := zwc.Census(s)

			fmt.Printf("total code points:     %d\n", utf8.RuneCountInString(s))
			fmt.Printf("tag digits:            %d (terminator: %v)\n", digits, tagTerm)
			fmt.Printf("zero-width bits:       %d (separator: %v)\n", bits, zwTerm)

			// NFC can strip or reorder the invisible characters; a stego
			// string that is not normalization-stable may not survive
			// transports that normalize text.
			if norm.NFC.String(s) != s {
				fmt.Println("warning: NFC normalization alters this string; the hidden payload may not survive normalizing transports")
			}
			return nil
		},
	}
}
