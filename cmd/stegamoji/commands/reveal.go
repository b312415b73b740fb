package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stegamoji/internal/domain"
)

// reveal [stego]: recover the hidden message from a stego string.
func revealCmd() *cobra.Command {
	var (
		schemeName string
		paste      bool
		copyOut    bool
	)
	cmd := &cobra.Command{
		Use:   "reveal [stego]",
		Short: "Recover a hidden message from a stego string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var stego string
			switch {
			case paste:
				s, err := appCtx.Clipboard.Paste()
				if err != nil {
					return err
				}
				stego = s
			case len(args) == 1:
				stego = args[0]
			default:
				return fmt.Errorf("pass a stego string or use --paste")
			}

			mode, err := domain.ParseScheme(schemeName, true)
			if err != nil {
				return err
			}

			det, err := appCtx.Detector.Reveal(stego, mode)
			if errors.Is(err, domain.ErrNoHiddenMessage) {
				return fmt.Errorf("no hidden message detected; try --scheme tag or --scheme binary")
			}
			if err != nil {
				return err
			}

			logger.Debug("message revealed", "scheme", det.Scheme)
			fmt.Println(det.Payload)
			if copyOut {
				if err := appCtx.Clipboard.Copy(det.Payload); err != nil {
					return err
				}
				logger.Debug("message copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemeName, "scheme", "s", domain.SchemeAuto.String(), "decode scheme: auto, tag or binary")
	cmd.Flags().BoolVar(&paste, "paste", false, "read the stego string from the clipboard")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also place the message on the clipboard")
	return cmd
}
