package main

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/markup-go/markup/pkg/render"
	"github.com/spf13/cobra"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		key    string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render the showcase page and upload it to S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket == "" {
				return fmt.Errorf("--bucket is required")
			}

			html, err := render.String(showcasePage())
			if err != nil {
				return fmt.Errorf("render page: %w", err)
			}

			ctx := cmd.Context()
			cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
			if err != nil {
				return fmt.Errorf("load AWS config: %w", err)
			}

			client := s3.NewFromConfig(cfg)
			_, err = client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:      aws.String(bucket),
				Key:         aws.String(key),
				Body:        strings.NewReader(html),
				ContentType: aws.String("text/html; charset=utf-8"),
			})
			if err != nil {
				return fmt.Errorf("upload to s3://%s/%s: %w", bucket, key, err)
			}

			fmt.Printf("published s3://%s/%s (%d bytes)\n", bucket, key, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (required)")
	cmd.Flags().StringVarP(&key, "key", "k", "index.html", "Object key")
	cmd.Flags().StringVarP(&region, "region", "r", "us-east-1", "AWS region")

	return cmd
}
