package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-qrgen/pkg/apidoc"
	"github.com/goliatone/go-qrgen/pkg/handler"
)

var openapiServerURL string

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the OpenAPI description of the HTTP surface",
	Args:  cobra.NoArgs,
	RunE:  runOpenAPI,
}

func init() {
	openapiCmd.Flags().String("base-path", "", "Path the page is mounted under (default /)")
	openapiCmd.Flags().StringVar(&openapiServerURL, "server-url", "", "Server URL to list in the document")
	rootCmd.AddCommand(openapiCmd)
}

func runOpenAPI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := apidoc.JSON(cmd.Context(), handler.MountPath(cfg.BasePath),
		apidoc.WithField(cfg.Field),
		apidoc.WithServerURL(openapiServerURL),
	)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
