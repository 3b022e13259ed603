package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/staylog/internal/domain"
)

func addSummary(topLevel *cobra.Command) {
	var (
		year      int
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Days per country for one year, flagging the residency threshold.",
		Example: `
staylog summary --user alice
staylog summary --user alice --year 2024 --threshold 90
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			userID, err := requireUser()
			if err != nil {
				return err
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if year == 0 {
				year = e.entries.Today().Year()
			}
			s, err := e.entries.Summary(cmd.Context(), userID, year, threshold)
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year; defaults to the current one")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "warning level in days; defaults to RESIDENCY_THRESHOLD_DAYS")
	topLevel.AddCommand(cmd)
}

func addCalendar(topLevel *cobra.Command) {
	var (
		year  int
		month int
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print month grids with the location of every day.",
		Example: `
staylog calendar --user alice
staylog calendar --user alice --year 2025 --month 2
staylog calendar --user alice --year 2025 --month 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			userID, err := requireUser()
			if err != nil {
				return err
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12, or 0 for the whole year")
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			today := e.entries.Today()
			if year == 0 {
				year = today.Year()
			}
			if !cmd.Flags().Changed("month") {
				month = int(today.Month())
			}

			w := cmd.OutOrStdout()
			if month == 0 {
				months, err := e.entries.CalendarYear(cmd.Context(), userID, year)
				if err != nil {
					return err
				}
				for _, m := range months {
					renderMonth(w, m)
				}
				return nil
			}
			m, err := e.entries.Calendar(cmd.Context(), userID, year, month-1)
			if err != nil {
				return err
			}
			renderMonth(w, m)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year; defaults to the current one")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12, 0 for all twelve; defaults to the current month")
	topLevel.AddCommand(cmd)
}

func addSet(topLevel *cobra.Command) {
	var (
		from, to      string
		city, country string
		accommodation string
		wipe          bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Assign a location to a range of days, or clear them.",
		Example: `
staylog set --user alice --from 2025-03-12 --to 2025-03-20 --city Sofia --country Bulgaria
staylog set --user alice --from 2025-03-15 --clear
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			userID, err := requireUser()
			if err != nil {
				return err
			}
			r, err := parseRange(from, to)
			if err != nil {
				return err
			}
			acc, err := domain.ParseAccommodation(accommodation)
			if err != nil && !wipe {
				return err
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if wipe {
				res, err := e.entries.DeleteRange(cmd.Context(), userID, r)
				if err != nil {
					return err
				}
				renderRange(cmd.OutOrStdout(), res)
				return nil
			}
			res, err := e.entries.SetLocation(cmd.Context(), userID, r,
				domain.Location{City: city, Country: country}, acc)
			if err != nil {
				return err
			}
			renderRange(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD; defaults to --from")
	cmd.Flags().StringVar(&city, "city", "", "city of the stay")
	cmd.Flags().StringVar(&country, "country", "", "country of the stay")
	cmd.Flags().StringVar(&accommodation, "accommodation", string(domain.AccommodationOther), "airbnb, hotel, friend or other")
	cmd.Flags().BoolVar(&wipe, "clear", false, "remove the days from every stay instead")
	_ = cmd.MarkFlagRequired("from")
	topLevel.AddCommand(cmd)
}

// parseRange reads an inclusive day range; an empty to means a single day.
func parseRange(from, to string) (domain.DateRange, error) {
	start, err := domain.ParseDate(from)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("--from: %w", err)
	}
	end := start
	if to != "" {
		if end, err = domain.ParseDate(to); err != nil {
			return domain.DateRange{}, fmt.Errorf("--to: %w", err)
		}
	}
	return domain.NewDateRange(start, end)
}
