package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
)

// NewShipmentsCommand creates the ocean shipments command group.
func NewShipmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shipments",
		Aliases: []string{"shipment", "ocean"},
		Short:   "Manage ocean shipments",
		Long:    "Register ocean shipments for tracking and inspect their status",
	}

	cmd.AddCommand(newShipmentsTrackCommand())
	cmd.AddCommand(newShipmentsGetCommand())
	cmd.AddCommand(newShipmentsFindCommand())
	cmd.AddCommand(newShipmentsListCommand())
	cmd.AddCommand(newShipmentsCarriersCommand())

	return cmd
}

func newShipmentsTrackCommand() *cobra.Command {
	var failOnConflict bool

	cmd := &cobra.Command{
		Use:   "track BOOKING_NUMBER",
		Short: "Register a shipment for tracking",
		Long: `Register a shipment for tracking by its carrier booking number.

When the shipment is already tracked, the existing shipment is looked up by
booking number and returned instead. Pass --fail-on-conflict to turn that
case into an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.OceanShipments().Create(cmd.Context(), &tracking.ShipmentCreateRequest{
				BookingNumber:  args[0],
				FailOnConflict: failOnConflict,
			})
			if err != nil {
				return fmt.Errorf("failed to track shipment: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(result)
			case OutputFormatYAML:
				return outputYAML(result)
			default:
				fmt.Printf("Shipment %d (%s): %s\n", result.Shipment.ID, result.Shipment.BookingNumber, result.Outcome)

				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&failOnConflict, "fail-on-conflict", false, "error out when the shipment is already tracked")

	return cmd
}

func newShipmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a shipment by id",
		Long:  "Get a tracked shipment, its route and its containers by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid shipment id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			shipment, err := client.OceanShipments().GetByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get shipment: %w", err)
			}

			if shipment == nil {
				return ErrShipmentNotFound
			}

			return outputShipment(shipment)
		},
	}
}

func newShipmentsFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find BOOKING_NUMBER",
		Short: "Find a shipment by booking number",
		Long:  "Find a tracked shipment by the carrier booking number it was registered under",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			shipment, err := client.OceanShipments().GetByBookingNumber(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to find shipment: %w", err)
			}

			if shipment == nil {
				return ErrShipmentNotFound
			}

			return outputShipment(shipment)
		},
	}
}

// ShipmentsListOptions holds the options for listing shipments.
type ShipmentsListOptions struct {
	AllPages     bool
	Limit        int
	Offset       int
	ChangedSince string
	PageDelay    time.Duration
}

func newShipmentsListCommand() *cobra.Command {
	var opts ShipmentsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shipments",
		Long:  "List tracked shipments, one page at a time or the whole collection with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShipmentsListCommand(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.Limit, "limit", tracking.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "index of the first result")
	cmd.Flags().StringVar(&opts.ChangedSince, "changed-since", "", "only shipments changed at or after this RFC 3339 instant")
	cmd.Flags().DurationVar(&opts.PageDelay, "page-delay", 0, "pause between page fetches with --all")

	return cmd
}

func runShipmentsListCommand(ctx context.Context, opts ShipmentsListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	var changedSince *time.Time

	if opts.ChangedSince != "" {
		parsed, err := time.Parse(time.RFC3339, opts.ChangedSince)
		if err != nil {
			return fmt.Errorf("invalid --changed-since value %q: %w", opts.ChangedSince, err)
		}

		changedSince = &parsed
	}

	shipments, err := fetchShipments(ctx, client.OceanShipments(), opts, changedSince)
	if err != nil {
		return fmt.Errorf("failed to list shipments: %w", err)
	}

	return outputShipmentList(shipments)
}

func fetchShipments(ctx context.Context, shipments tracking.ShipmentsClient, opts ShipmentsListOptions, changedSince *time.Time) ([]tracking.Shipment, error) {
	if opts.AllPages {
		return shipments.All(ctx, &tracking.PaginationOptions{
			PageSize:     opts.Limit,
			PageDelay:    opts.PageDelay,
			ChangedSince: changedSince,
		}).All()
	}

	listOpts := tracking.NewListOptions().WithLimit(opts.Limit).WithOffset(opts.Offset)
	if changedSince != nil {
		listOpts.ChangedSince = changedSince
	}

	return shipments.List(ctx, listOpts)
}

func newShipmentsCarriersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "carriers",
		Short: "List supported ocean carriers",
		Long:  "List the ocean carriers the tracking API supports, by SCAC code",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			carriers, err := client.OceanShipments().Carriers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list carriers: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(carriers)
			case OutputFormatYAML:
				return outputYAML(carriers)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("SCAC", "Name")

				for _, carrier := range carriers {
					_ = table.Append(carrier.SCAC, carrier.Name)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func outputShipment(shipment *tracking.Shipment) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(shipment)
	case OutputFormatYAML:
		return outputYAML(shipment)
	default:
		return outputShipmentTable(shipment)
	}
}

func outputShipmentTable(shipment *tracking.Shipment) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", strconv.FormatInt(shipment.ID, 10))
	_ = table.Append("Booking Number", shipment.BookingNumber)
	_ = table.Append("Status", shipment.Status)

	if shipment.Carrier != nil {
		_ = table.Append("Carrier", fmt.Sprintf("%s (%s)", shipment.Carrier.Name, shipment.Carrier.SCAC))
	}

	if shipment.Route != nil {
		_ = table.Append("Port of Loading", shipment.Route.PortOfLoading.Location.Name)
		_ = table.Append("Date of Loading", formatTimePtr(shipment.Route.PortOfLoading.DateOfLoading))
		_ = table.Append("Port of Discharge", shipment.Route.PortOfDischarge.Location.Name)
		_ = table.Append("Date of Discharge", formatTimePtr(shipment.Route.PortOfDischarge.DateOfDischarge))
	}

	_ = table.Append("Checked At", formatTimePtr(shipment.CheckedAt))
	_ = table.Append("Changed At", formatTimePtr(shipment.ChangedAt))
	_ = table.Append("Created At", formatTime(shipment.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if len(shipment.Containers) > 0 {
		fmt.Println()
		fmt.Println("Containers:")

		return outputContainersTable(shipment.Containers)
	}

	return nil
}

func outputContainersTable(containers []tracking.Container) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Number", "Status", "Last Movement", "At", "Time")

	for _, container := range containers {
		event, location, timestamp := NotAvailable, NotAvailable, NotAvailable

		if len(container.Movements) > 0 {
			last := container.Movements[len(container.Movements)-1]
			event = last.Event
			location = last.Location.Name
			timestamp = formatTime(last.Timestamp)
		}

		_ = table.Append(container.Number, container.Status, event, location, timestamp)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputShipmentList(shipments []tracking.Shipment) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(shipments)
	case OutputFormatYAML:
		return outputYAML(shipments)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Booking Number", "Status", "Changed At")

		for _, shipment := range shipments {
			_ = table.Append(
				strconv.FormatInt(shipment.ID, 10),
				shipment.BookingNumber,
				shipment.Status,
				formatTimePtr(shipment.ChangedAt),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		fmt.Printf("\n%d shipments\n", len(shipments))

		return nil
	}
}
