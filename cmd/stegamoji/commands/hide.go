package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"stegamoji/internal/domain"
)

// hide <message>: embed <message> invisibly after the carrier.
func hideCmd() *cobra.Command {
	var (
		carrier    string
		schemeName string
		copyOut    bool
	)
	cmd := &cobra.Command{
		Use:   "hide <message>",
		Short: "Embed a secret message in a carrier string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if carrier == "" {
				carrier = appCtx.Defaults.DefaultCarrier
			}
			if carrier == "" {
				return fmt.Errorf("carrier required (-c)")
			}
			if schemeName == "" {
				schemeName = appCtx.Defaults.DefaultScheme
			}
			scheme, err := domain.ParseScheme(schemeName, false)
			if err != nil {
				return err
			}
			codec, ok := appCtx.Codec(scheme)
			if !ok {
				return fmt.Errorf("no codec for scheme %q", scheme)
			}

			stego := codec.Hide(carrier, args[0])
			logger.Debug("message hidden",
				"scheme", scheme,
				"payload_runes", utf8.RuneCountInString(args[0]),
				"carrier_runes", utf8.RuneCountInString(carrier),
				"stego_runes", utf8.RuneCountInString(stego),
			)

			fmt.Println(stego)
			if copyOut {
				if err := appCtx.Clipboard.Copy(stego); err != nil {
					return err
				}
				logger.Debug("stego string copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&carrier, "carrier", "c", "", "carrier string, typically an emoji (default from config)")
	cmd.Flags().StringVarP(&schemeName, "scheme", "s", "", "encoding scheme: tag or binary (default from config)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also place the result on the clipboard")
	return cmd
}
