package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Рассчитать стоимость без обращения к хранилищам",
	}
	cmd.AddCommand(quoteRentalCmd(), quoteItemCmd())
	return cmd
}

func quoteRentalCmd() *cobra.Command {
	var rateTablePath, start, end string

	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Стоимость аренды по тарифной таблице из TOML файла",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadRateTable(rateTablePath)
			if err != nil {
				return err
			}

			startDate, err := handlers.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			endDate, err := handlers.ParseDate(end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			quote, ok := pricing.ComputeRentalPrice(table, startDate, endDate)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "total: not computable for %s..%s, awaiting valid dates\n", start, end)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "period: %s\ndays: %d\nlong stay: %t\ndaily rate: %.2f\ndaily deductible: %.2f\ntotal: %.2f\n",
				quote.Period.Name, quote.TotalDays, quote.LongStay, quote.DailyRate, quote.DailyDeductible, quote.TotalPrice)
			return nil
		},
	}

	cmd.Flags().StringVar(&rateTablePath, "rate-table", "", "TOML файл тарифной таблицы")
	cmd.Flags().StringVar(&start, "start", "", "дата начала YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "дата окончания YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("rate-table")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func quoteItemCmd() *cobra.Command {
	var (
		price         float64
		travelers     int
		children      int
		childDiscount float64
	)

	cmd := &cobra.Command{
		Use:   "item",
		Short: "Стоимость тура или впечатления для группы",
		RunE: func(cmd *cobra.Command, args []string) error {
			travelers = domain.NormalizeTravelerCount(travelers)
			children = domain.NormalizeChildCount(children)

			total, err := pricing.ComputeItemPrice(price, travelers, children, childDiscount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "travelers: %d\nchildren: %d\ntotal: %.2f\n", travelers, children, total)
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "цена за человека")
	cmd.Flags().IntVar(&travelers, "travelers", 1, "количество путешественников")
	cmd.Flags().IntVar(&children, "children", 0, "из них детей")
	cmd.Flags().Float64Var(&childDiscount, "child-discount", domain.DefaultChildDiscountRate, "доля скидки для детей")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
