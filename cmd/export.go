package cmd

import (
	"fmt"

	"github.com/arvindrk/eatdecider/internal/cloudwriter"
	"github.com/arvindrk/eatdecider/internal/export"
	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the feedback event log as parquet, locally or to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx := cmd.Context()
		_, feedback, cleanup, err := openStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		events, err := feedback.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("reading feedback log: %w", err)
		}

		path, err := export.WriteLocal(cfg.Export.Path, events)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d events to %s\n", len(events), path)

		if cfg.Export.Destination == "s3" {
			uploader, err := cloudwriter.NewS3Uploader(ctx, cfg.Export.Region)
			if err != nil {
				return err
			}
			if err := export.Upload(ctx, uploader, cfg.Export.Bucket, path); err != nil {
				return fmt.Errorf("uploading export: %w", err)
			}
			fmt.Printf("Uploaded export to s3://%s\n", cfg.Export.Bucket)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
