package main

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables/models"
)

func rateTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratetable",
		Short: "Работа с тарифными таблицами аренды",
	}
	cmd.AddCommand(rateTableValidateCmd())
	return cmd
}

func rateTableValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.toml>",
		Short: "Проверить, что сезоны покрывают весь год без пересечений",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadRateTable(args[0])
			if err != nil {
				return err
			}
			printRateTable(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

// loadRateTable читает тарифную таблицу из TOML и валидирует ее
func loadRateTable(path string) (*domain.RateTable, error) {
	var req models.UpsertRateTableRequest
	if _, err := toml.DecodeFile(path, &req); err != nil {
		return nil, fmt.Errorf("read rate table %s: %w", path, err)
	}

	table, err := ratetables.Validate(&req)
	if err != nil {
		return nil, fmt.Errorf("rate table %s: %w", path, err)
	}
	return table, nil
}

func printRateTable(w io.Writer, table *domain.RateTable) {
	fmt.Fprintf(w, "rate table %s is valid: %d periods, threshold %d days, deductible %.2f/day\n",
		table.SubjectID, len(table.Periods), table.Threshold(), table.DailyDeductible)
	for _, p := range table.Periods {
		fmt.Fprintf(w, "  %-12s %s..%s  short %.2f  long %.2f\n",
			p.Name,
			models.FormatMonthDay(p.StartMonth, p.StartDay),
			models.FormatMonthDay(p.EndMonth, p.EndDay),
			p.ShortStayDailyRate,
			p.LongStayDailyRate,
		)
	}
}
