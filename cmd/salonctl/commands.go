package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"beauteefool/config"
	catalogModel "beauteefool/internal/domains/catalog/model"
	catalogService "beauteefool/internal/domains/catalog/service"
	scheduleModel "beauteefool/internal/domains/schedule/model"
	"beauteefool/shared"
	"beauteefool/shared/constant"
	"beauteefool/shared/timezone"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config, now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:           "salonctl",
		Short:         "Inspect the salon menu and open time slots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServicesCmd(), newSlotsCmd(cfg, now))

	return root
}

func newServicesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List the services on the menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := catalogService.NewSalonCatalog()

			services := catalog.All()
			if category != constant.CategoryAll {
				cat := catalogModel.Category(category)
				if !cat.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}

				services = catalog.ByCategory(cat)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDURATION\tPRICE")

			for _, s := range services {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%s\n",
					s.ID, s.Name, s.Category.Label(), catalogModel.FormatDuration(s.Duration), s.Price.StringFixed(0))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", constant.CategoryAll, "category to list")

	return cmd
}

func newSlotsCmd(cfg *config.Config, now func() time.Time) *cobra.Command {
	var (
		date     string
		services string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show the time slots of a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := timezone.ParseDay(date)
			if err != nil {
				return fmt.Errorf("--date must be formatted as YYYY-MM-DD: %w", err)
			}

			hours, err := scheduleModel.NewBusinessHours(
				cfg.Salon.BusinessHours.Open, cfg.Salon.BusinessHours.Close, cfg.Salon.BusinessHours.IntervalMinutes)
			if err != nil {
				return fmt.Errorf("invalid business hours: %w", err)
			}

			length := duration
			if !cmd.Flags().Changed("duration") {
				selected, unknown := catalogService.NewSalonCatalog().ByIDs(shared.SplitList(services))
				if len(unknown) > 0 {
					return fmt.Errorf("unknown services: %s", strings.Join(unknown, ", "))
				}

				length = catalogModel.Sum(selected).Duration
			}

			slots, err := hours.Slots(day, length, now())
			if err != nil {
				return fmt.Errorf("failed to build slots: %w", err)
			}

			out := cmd.OutOrStdout()
			open := 0

			for _, slot := range slots {
				mark := "-"
				if slot.Available {
					mark = "open"
					open++
				}

				fmt.Fprintf(out, "%8s  %s\n", slot.Time, mark)
			}

			fmt.Fprintf(out, "%d of %d slots open for %s\n", open, len(slots), catalogModel.FormatDuration(length))

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", timezone.Format(now(), constant.DayFormat), "day to inspect (YYYY-MM-DD)")
	cmd.Flags().StringVar(&services, "services", constant.Empty, "comma separated service IDs")
	cmd.Flags().IntVar(&duration, "duration", 0, "length in minutes, overrides --services")

	return cmd
}
