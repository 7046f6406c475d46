// Package cli exposes the record exports as a command line tool.
package cli

import (
	"context"
	"dentalclinic-service/internal/app/services/core/billings"
	"dentalclinic-service/internal/app/services/core/records"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/exporter"
	"dentalclinic-service/internal/pkg/utils"
	"errors"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	Format string `validate:"required,oneof=csv json text table"`
	Output string
}

type exportFunc func(ctx context.Context, format string) (*exporter.Document, error)

func NewRootCommand(log *logrus.Logger, billingUsecase billings.BillingUsecase, recordUsecase records.RecordUsecase) *cobra.Command {
	flags := &exportFlags{}

	rootCmd := &cobra.Command{
		Use:           "clinic-export",
		Short:         "Export clinic billing and dental records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.Format, "format", "f", constvars.ExportFormatTable, "export format: csv, json, text or table")
	rootCmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", "", "write the export to this file instead of stdout")

	billingCmd := &cobra.Command{
		Use:   "billing",
		Short: "Export the billing list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, log, flags, constvars.ResourceBillings, billingUsecase.ExportBillings)
		},
	}

	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "Export the dental records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, log, flags, constvars.ResourceRecords, recordUsecase.ExportClinicalVisits)
		},
	}

	rootCmd.AddCommand(billingCmd, recordsCmd)
	return rootCmd
}

func runExport(cmd *cobra.Command, log *logrus.Logger, flags *exportFlags, resource string, export exportFunc) error {
	if err := utils.ValidateStruct(flags); err != nil {
		return errors.New(exceptions.FormatFirstValidationError(err))
	}

	document, err := export(cmd.Context(), flags.Format)
	if err != nil {
		return err
	}

	destination := "stdout"
	if flags.Output == "" {
		if _, err := cmd.OutOrStdout().Write(document.Body); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(flags.Output, document.Body, 0o644); err != nil {
			return err
		}
		destination = flags.Output
	}

	log.WithFields(logrus.Fields{
		constvars.LoggingDataKey:     resource,
		constvars.LoggingFormatKey:   flags.Format,
		constvars.LoggingFileNameKey: destination,
		constvars.LoggingSizeKey:     humanize.Bytes(uint64(len(document.Body))),
	}).Info("Export written")
	return nil
}
