package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"walt/internal/app"
	"walt/internal/pkg/config"
	"walt/internal/entities"
	"walt/internal/pkg/fixtures"
	"walt/internal/service/order"
	"walt/pkg/logger"
)

func (s *seedCmd) fixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Load reference cities, drivers, customers and restaurants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.withApp(cmd.Context(), func(seedApp *app.SeedApp, _ logger.Logger) error {
				return loadFixtures(cmd, seedApp)
			})
		},
	}
}

func loadFixtures(cmd *cobra.Command, seedApp *app.SeedApp) error {
	bar := newProgressBar(cmd.ErrOrStderr(), fixtures.Size(), "fixtures")
	err := fixtures.Load(cmd.Context(), seedApp.ServiceCatalog, func() { _ = bar.Add(1) })
	_ = bar.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "loaded %d fixture records\n", fixtures.Size())
	return nil
}

// prepareFixtures загружает справочник по флагу, а для хранилища в памяти всегда: оно пустое при каждом запуске.
func (s *seedCmd) prepareFixtures(cmd *cobra.Command, seedApp *app.SeedApp, loadFirst bool) error {
	if !loadFirst && s.config().Storage.Driver != config.StorageDriverMemory {
		return nil
	}
	return loadFixtures(cmd, seedApp)
}

func (s *seedCmd) driversCmd() *cobra.Command {
	var (
		count     int
		cities    []string
		loadFirst bool
	)

	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "Register random drivers in the given cities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.withApp(cmd.Context(), func(seedApp *app.SeedApp, _ logger.Logger) error {
				if err := s.prepareFixtures(cmd, seedApp, loadFirst); err != nil {
					return err
				}

				drivers := fixtures.RandomDrivers(s.faker(), cities, count)

				var created, skipped int
				bar := newProgressBar(cmd.ErrOrStderr(), len(drivers), "drivers")
				for _, driver := range drivers {
					_, err := seedApp.ServiceCatalog.CreateDriver(cmd.Context(), driver)
					switch {
					case err == nil:
						created++
					case errors.Is(err, entities.ErrConflict):
						skipped++
					default:
						_ = bar.Finish()
						return fmt.Errorf("create driver %q: %w", driver.Name, err)
					}
					_ = bar.Add(1)
				}
				_ = bar.Finish()

				fmt.Fprintf(cmd.OutOrStdout(), "created %d drivers, skipped %d existing\n", created, skipped)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of drivers")
	cmd.Flags().StringSliceVar(&cities, "city", fixtures.Cities, "cities to spread drivers over, the city must exist")
	cmd.Flags().BoolVar(&loadFirst, "load-fixtures", false, "load fixtures before registering drivers")
	return cmd
}

type orderOutcome string

const (
	outcomeAssigned    orderOutcome = "assigned"
	outcomeNoDriver    orderOutcome = "no available driver"
	outcomeCrossCity   orderOutcome = "cross-city"
	outcomeUnknownUser orderOutcome = "customer not registered"
)

func (s *seedCmd) ordersCmd() *cobra.Command {
	var (
		count     int
		from      string
		window    time.Duration
		loadFirst bool
		top       int
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Place random orders between fixture customers and restaurants and print the driver ranking",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := time.Parse(time.RFC3339, from)
			if err != nil {
				return fmt.Errorf("parse --from: %w", err)
			}

			return s.withApp(cmd.Context(), func(seedApp *app.SeedApp, _ logger.Logger) error {
				if err := s.prepareFixtures(cmd, seedApp, loadFirst); err != nil {
					return err
				}

				fake := s.faker()
				outcomes := make(map[orderOutcome]int)

				bar := newProgressBar(cmd.ErrOrStderr(), count, "orders")
				for range count {
					customer := fixtures.Customers[fake.IntBetween(0, len(fixtures.Customers)-1)]
					restaurant := fixtures.Restaurants[fake.IntBetween(0, len(fixtures.Restaurants)-1)]
					at := fake.Time().TimeBetween(start, start.Add(window)).UTC()

					_, err := seedApp.ServiceOrder.CreateOrderByNames(cmd.Context(), customer.Name, restaurant.Name, at)
					switch {
					case err == nil:
						outcomes[outcomeAssigned]++
					case errors.Is(err, order.ErrNoAvailableDriver):
						outcomes[outcomeNoDriver]++
					case errors.Is(err, order.ErrCrossCityOrder):
						outcomes[outcomeCrossCity]++
					case errors.Is(err, order.ErrCustomerNotRegistered):
						outcomes[outcomeUnknownUser]++
					default:
						_ = bar.Finish()
						return fmt.Errorf("order %s from %s: %w", customer.Name, restaurant.Name, err)
					}
					_ = bar.Add(1)
				}
				_ = bar.Finish()

				ranked, err := seedApp.ServiceReport.GetDriverRankReport(cmd.Context())
				if err != nil {
					return fmt.Errorf("rank report: %w", err)
				}

				return printSummary(cmd.OutOrStdout(), outcomes, ranked, top)
			})
		},
	}

	cmd.Flags().IntVar(&count, "count", 50, "number of orders")
	cmd.Flags().StringVar(&from, "from", "2024-01-01T08:00:00Z", "earliest delivery time, RFC3339")
	cmd.Flags().DurationVar(&window, "window", 12*time.Hour, "delivery times are spread over [from, from+window]")
	cmd.Flags().BoolVar(&loadFirst, "load-fixtures", false, "load fixtures before placing orders")
	cmd.Flags().IntVar(&top, "top", 5, "number of drivers to print from the ranking")
	return cmd
}

func printSummary(out io.Writer, outcomes map[orderOutcome]int, ranked []entities.DriverDistance, top int) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "OUTCOME\tORDERS")
	for _, outcome := range []orderOutcome{outcomeAssigned, outcomeNoDriver, outcomeCrossCity, outcomeUnknownUser} {
		fmt.Fprintf(w, "%s\t%d\n", outcome, outcomes[outcome])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "RANK\tDRIVER\tCITY ID\tDISTANCE")
	for i, row := range ranked[:min(top, len(ranked))] {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", i+1, row.DriverName, row.CityID, row.TotalDistance)
	}

	return w.Flush()
}
