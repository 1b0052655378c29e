package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brewery/internal/config"
	"brewery/internal/logging"
	"brewery/internal/restdocs"
	"brewery/internal/storage"
)

// defaultPrefix keeps keys like docs/v2/beers-get/curl-request.adoc.
const defaultPrefix = "docs"

// newStorage is replaced in tests.
var newStorage = storage.NewMinIO

type publishOptions struct {
	dir     string
	prefix  string
	presign time.Duration
}

var publishOpts publishOptions

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload generated snippets to the configured bucket",
	Long: `Upload every file below --dir to the MinIO/S3 bucket from MINIO_*.

Object keys are --prefix joined with the file's path relative to --dir.
With --presign a time-limited download URL is printed for each object.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if !cmd.Flags().Changed("dir") {
			publishOpts.dir = cfg.SnippetsDir
		}

		logger, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer logger.Sync()

		st, err := newStorage(cmd.Context(), cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}
		return runPublish(cmd.Context(), cmd, st, logger, publishOpts)
	},
}

func runPublish(ctx context.Context, cmd *cobra.Command, st storage.Storage, logger *zap.Logger, opts publishOptions) error {
	uploaded, err := restdocs.Publish(ctx, opts.dir, opts.prefix, st)
	if err != nil {
		return err
	}
	logger.Info("snippets_published",
		zap.String("dir", opts.dir),
		zap.String("prefix", opts.prefix),
		zap.Int("count", len(uploaded)),
	)

	out := cmd.OutOrStdout()
	for _, obj := range uploaded {
		if opts.presign <= 0 {
			fmt.Fprintln(out, obj.Key)
			continue
		}
		url, err := st.PresignGet(ctx, obj.Key, opts.presign)
		if err != nil {
			return fmt.Errorf("presign %s: %w", obj.Key, err)
		}
		fmt.Fprintf(out, "%s\t%s\n", obj.Key, url)
	}
	return nil
}

func init() {
	publishCmd.Flags().StringVar(&publishOpts.dir, "dir", "build/generated-snippets", "directory holding generated snippets (default SNIPPETS_DIR)")
	publishCmd.Flags().StringVar(&publishOpts.prefix, "prefix", defaultPrefix, "object key prefix; snippet names already start with the API version")
	publishCmd.Flags().DurationVar(&publishOpts.presign, "presign", 0, "print a pre-signed download URL valid for this long")
	rootCmd.AddCommand(publishCmd)
}
