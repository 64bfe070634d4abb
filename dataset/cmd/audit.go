package main

import (
	"fmt"

	vision "cloud.google.com/go/vision/apiv1"
	"github.com/ridge/must/v2"
	"github.com/spf13/cobra"

	"github.com/visionex-project/textblocks/dataset/impl"
)

func newAuditCommand(opts *options) *cobra.Command {
	var out string
	var limit int
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check generated images against Cloud Vision OCR",
		Long: `Runs document text detection on a sample of images from every font directory and
compares the first recognized line with the snippet in the file name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := opts.config
			if cmd.Flags().Changed("out") {
				config.OutputDir = out
			}
			if limit < 1 {
				return fmt.Errorf("limit must be at least 1, got %d", limit)
			}

			samples, err := impl.CollectAuditSamples(config.OutputDir, limit)
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				printWarning("No generated images found in %s", config.OutputDir)
				return nil
			}

			ctx := cmd.Context()
			visionClient := must.OK1(vision.NewImageAnnotatorClient(ctx, clientOptions(ctx, config)...))
			defer visionClient.Close()

			p := newProgress(opts.logger)
			reports, err := impl.Audit(ctx, visionClient, samples, config.SnippetLength, opts.logger)
			if err != nil {
				return err
			}
			printAudit(reports)
			p.done(fmt.Sprintf("Audited %d images", len(samples)))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "dataset directory to audit")
	cmd.Flags().IntVar(&limit, "limit", 5, "images to check per font")
	return cmd
}
