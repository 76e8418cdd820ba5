package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/middleware"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/internal/repository/composite"
	"github.com/kingrain94/rental-manager-api/internal/repository/postgres"
	"github.com/kingrain94/rental-manager-api/internal/service"
	"github.com/kingrain94/rental-manager-api/internal/service/queue"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

// openRepository connects to the writer and reader databases. Search is not needed here.
func openRepository() (repository.Repository, func(), error) {
	conns, err := config.NewDatabaseConnections()
	if err != nil {
		return nil, nil, err
	}
	repo := composite.New(postgres.NewPostgresRepository(conns), nil)
	return repo, func() { _ = conns.Close() }, nil
}

func newSQSService(ctx context.Context) (*queue.SQSService, error) {
	sqsConfig := config.DefaultSQSConfig()
	client, err := sqsConfig.GetClient(ctx)
	if err != nil {
		return nil, err
	}
	return queue.NewSQSService(client, sqsConfig), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			conns, err := config.NewDatabaseConnections()
			if err != nil {
				return err
			}
			defer conns.Close()

			if err := postgres.Migrate(conns.Writer); err != nil {
				return err
			}
			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair room statuses that disagree with the tenant records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			enqueue, _ := cmd.Flags().GetBool("enqueue")

			if enqueue {
				sqsService, err := newSQSService(ctx)
				if err != nil {
					return err
				}
				if err := sqsService.SendReconcileMessage(ctx, "rentalctl"); err != nil {
					return err
				}
				fmt.Println("Reconcile request queued.")
				return nil
			}

			repo, closeDB, err := openRepository()
			if err != nil {
				return err
			}
			defer closeDB()

			occupancy := service.NewOccupancyService(repo, nil, logger.NewLogger(os.Getenv("APP_ENV")))
			result, err := occupancy.Reconcile(ctx)
			if err != nil {
				return err
			}
			return printJSON(dto.FromReconcileResult(result.RoomsChecked, result.Repaired))
		},
	}

	cmd.Flags().Bool("enqueue", false, "Queue the sweep for the reconcile worker instead of running it here")
	return cmd
}

// roomCmd applies one mode of the occupancy rule to a single room name. Both modes only
// write rooms whose status differs, so rerunning them is harmless.
func roomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Set the occupancy of the rooms with one name",
	}

	markRented := &cobra.Command{
		Use:   "mark-rented",
		Short: "Mark the rooms rented by their first tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			room, _ := cmd.Flags().GetString("room")
			tenantID, _ := cmd.Flags().GetString("tenant")
			return runOccupancy(cmd, func(ctx context.Context, occupancy *service.OccupancyService) (int, error) {
				return occupancy.MarkRented(ctx, room, tenantID)
			})
		},
	}
	markRented.Flags().String("tenant", "", "Tenant to record when no tenant references the room yet")

	markAvailable := &cobra.Command{
		Use:   "mark-available",
		Short: "Mark the rooms available and clear their tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			room, _ := cmd.Flags().GetString("room")
			return runOccupancy(cmd, func(ctx context.Context, occupancy *service.OccupancyService) (int, error) {
				return occupancy.MarkAvailable(ctx, room)
			})
		},
	}

	for _, sub := range []*cobra.Command{markRented, markAvailable} {
		sub.Flags().String("room", "", "Room name")
		_ = sub.MarkFlagRequired("room")
		cmd.AddCommand(sub)
	}
	return cmd
}

func runOccupancy(cmd *cobra.Command, apply func(ctx context.Context, occupancy *service.OccupancyService) (int, error)) error {
	ctx := cmd.Context()

	repo, closeDB, err := openRepository()
	if err != nil {
		return err
	}
	defer closeDB()

	// Rooms that change are reindexed through the queue when it is configured
	var sqsSvc service.SQSService
	if sqsService, err := newSQSService(ctx); err == nil {
		sqsSvc = sqsService
	}

	occupancy := service.NewOccupancyService(repo, sqsSvc, logger.NewLogger(os.Getenv("APP_ENV")))
	changed, err := apply(ctx, occupancy)
	if err != nil {
		return err
	}
	fmt.Printf("%d room(s) updated.\n", changed)
	return nil
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the revenue report of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")
			archive, _ := cmd.Flags().GetBool("archive")

			if archive {
				if year == 0 {
					return fmt.Errorf("--archive needs --year")
				}
				sqsService, err := newSQSService(ctx)
				if err != nil {
					return err
				}
				if err := sqsService.SendArchiveMessage(ctx, year, month); err != nil {
					return err
				}
				fmt.Printf("Archive of %04d-%02d queued.\n", year, month)
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			location, err := cfg.ReportLocation()
			if err != nil {
				return err
			}

			repo, closeDB, err := openRepository()
			if err != nil {
				return err
			}
			defer closeDB()

			payments := service.NewPaymentService(repo, location, logger.NewLogger(cfg.AppEnv))
			report, err := payments.MonthlyReport(ctx, month, year)
			if err != nil {
				return err
			}
			return printJSON(dto.FromMonthlyReport(report))
		},
	}

	cmd.Flags().Int("month", int(time.Now().Month()), "Month 1-12")
	cmd.Flags().Int("year", 0, "Year; 0 includes the month of every year")
	cmd.Flags().Bool("archive", false, "Queue the report for archiving to S3 instead of printing it")
	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			email, _ := cmd.Flags().GetString("email")
			rolesFlag, _ := cmd.Flags().GetString("roles")
			expirationHours, _ := cmd.Flags().GetInt("exp")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWTSecretKey == "" {
				return fmt.Errorf("JWT_SECRET_KEY is not set")
			}
			cfg.JWTExpirationHours = expirationHours

			roles := []string{}
			for _, role := range strings.Split(rolesFlag, ",") {
				if role = strings.TrimSpace(role); role != "" {
					roles = append(roles, role)
				}
			}

			token, err := middleware.NewAuthMiddleware(cfg).GenerateToken(userID, email, roles)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().String("user", "", "User ID for the token")
	cmd.Flags().String("email", "", "Email claim")
	cmd.Flags().String("roles", "staff", "Comma-separated list of roles")
	cmd.Flags().Int("exp", 24, "Token expiration in hours")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
