package main

import (
	"github.com/spf13/cobra"

	"github.com/visionex-project/textblocks/dataset/impl/font"
)

func newFontsCommand(opts *options) *cobra.Command {
	var fonts string
	var builtinFonts bool
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the fonts a generate run would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := opts.config
			if cmd.Flags().Changed("fonts") {
				config.FontDirectory = fonts
			}
			if cmd.Flags().Changed("builtin-fonts") {
				config.BuiltinFonts = builtinFonts
			}

			catalog := resolveCatalog(config, opts.logger)
			if len(catalog) == 0 {
				return font.ErrNoFonts
			}
			printCatalog(catalog)
			return nil
		},
	}
	cmd.Flags().StringVar(&fonts, "fonts", "", "directory of .ttf, .otf and .ttc files")
	cmd.Flags().BoolVar(&builtinFonts, "builtin-fonts", false, "include the bundled Go fonts")
	return cmd
}
