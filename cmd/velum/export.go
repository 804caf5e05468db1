package main

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/velum-dev/velum/internal/config"
	"github.com/velum-dev/velum/internal/errors"
	"github.com/velum-dev/velum/pkg/publish"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the site as static files",
		Long: `Render every page and write the result as a static site.

The destination comes from velum.json: the export.output directory by
default, or an S3 bucket when export.s3Bucket is set. S3 uploads read
credentials from the standard AWS environment variables.

Examples:
  velum export
  velum export --output=public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from velum.json)")

	return cmd
}

func runExport(output string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Export.Output = output
	}

	renderCfg, err := cfg.RenderConfig()
	if err != nil {
		return err
	}

	store, dest, err := exportStore(cfg)
	if err != nil {
		return err
	}

	site := welcomeSite(cfg.Name)
	publisher, err := publish.NewPublisher(site, store, renderCfg)
	if err != nil {
		return err
	}
	report, err := publisher.Publish(context.Background())
	if err != nil {
		return err
	}

	success("exported %d pages (%d bytes) to %s", report.Pages, report.Bytes, dest)
	return nil
}

// exportStore builds the configured Store: S3 when a bucket is set,
// otherwise the local output directory.
func exportStore(cfg *config.Config) (publish.Store, string, error) {
	if cfg.Export.S3Bucket == "" {
		store, err := publish.NewDiskStore(cfg.Export.Output)
		if err != nil {
			return nil, "", err
		}
		return store, store.Root(), nil
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		return nil, "", errors.New("E121").
			WithDetail("AWS_REGION must be set when exporting to S3").
			WithSuggestion("export AWS_REGION, AWS_ACCESS_KEY_ID, and AWS_SECRET_ACCESS_KEY")
	}

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: envCredentials{},
	})
	return publish.NewS3Store(client, cfg.Export.S3Bucket, cfg.Export.S3Prefix),
		"s3://" + cfg.Export.S3Bucket + "/" + cfg.Export.S3Prefix, nil
}

// envCredentials reads static credentials from the standard AWS
// environment variables.
type envCredentials struct{}

func (envCredentials) Retrieve(ctx context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New("E121").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set when exporting to S3")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "VelumEnvironment",
	}, nil
}
