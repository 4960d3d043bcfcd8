package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
)

// NewAirCommand creates the air shipments command group.
func NewAirCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "air",
		Short: "Manage air shipments",
		Long:  "Register air shipments for tracking by air-waybill number and inspect their status",
	}

	cmd.AddCommand(newAirTrackCommand())
	cmd.AddCommand(newAirGetCommand())
	cmd.AddCommand(newAirFindCommand())
	cmd.AddCommand(newAirListCommand())
	cmd.AddCommand(newAirCarriersCommand())

	return cmd
}

func newAirTrackCommand() *cobra.Command {
	var (
		carrierCode    string
		failOnConflict bool
	)

	cmd := &cobra.Command{
		Use:   "track AWB_NUMBER",
		Short: "Register an air shipment for tracking",
		Long: `Register an air shipment for tracking by its air-waybill number.

When the shipment is already tracked, the existing shipment is looked up by
AWB number and returned instead. Pass --fail-on-conflict to turn that case
into an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.AirShipments().Create(cmd.Context(), &tracking.AirShipmentCreateRequest{
				AWBNumber:      args[0],
				CarrierCode:    carrierCode,
				FailOnConflict: failOnConflict,
			})
			if err != nil {
				return fmt.Errorf("failed to track air shipment: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(result)
			case OutputFormatYAML:
				return outputYAML(result)
			default:
				fmt.Printf("Air shipment %d (%s): %s\n", result.Shipment.ID, result.Shipment.AWBNumber, result.Outcome)

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&carrierCode, "carrier", "", "IATA airline code, when the AWB prefix is ambiguous")
	cmd.Flags().BoolVar(&failOnConflict, "fail-on-conflict", false, "error out when the shipment is already tracked")

	return cmd
}

func newAirGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get an air shipment by id",
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

			shipment, err := client.AirShipments().GetByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get air shipment: %w", err)
			}

			if shipment == nil {
				return ErrShipmentNotFound
			}

			return outputAirShipment(shipment)
		},
	}
}

func newAirFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find AWB_NUMBER",
		Short: "Find an air shipment by air-waybill number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			shipment, err := client.AirShipments().GetByAWB(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to find air shipment: %w", err)
			}

			if shipment == nil {
				return ErrShipmentNotFound
			}

			return outputAirShipment(shipment)
		},
	}
}

func newAirListCommand() *cobra.Command {
	var opts ShipmentsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List air shipments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var shipments []tracking.AirShipment

			if opts.AllPages {
				shipments, err = client.AirShipments().All(cmd.Context(), &tracking.PaginationOptions{
					PageSize:  opts.Limit,
					PageDelay: opts.PageDelay,
				}).All()
			} else {
				shipments, err = client.AirShipments().List(cmd.Context(),
					tracking.NewListOptions().WithLimit(opts.Limit).WithOffset(opts.Offset))
			}

			if err != nil {
				return fmt.Errorf("failed to list air shipments: %w", err)
			}

			return outputAirShipmentList(shipments)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.Limit, "limit", tracking.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "index of the first result")
	cmd.Flags().DurationVar(&opts.PageDelay, "page-delay", 0, "pause between page fetches with --all")

	return cmd
}

func newAirCarriersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "carriers",
		Short: "List supported airlines",
		Long:  "List the airlines the tracking API supports, by IATA code",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			carriers, err := client.AirShipments().Carriers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list airlines: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(carriers)
			case OutputFormatYAML:
				return outputYAML(carriers)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("IATA", "Name")

				for _, carrier := range carriers {
					_ = table.Append(carrier.IATA, carrier.Name)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func outputAirShipment(shipment *tracking.AirShipment) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(shipment)
	case OutputFormatYAML:
		return outputYAML(shipment)
	default:
		return outputAirShipmentTable(shipment)
	}
}

func outputAirShipmentTable(shipment *tracking.AirShipment) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", strconv.FormatInt(shipment.ID, 10))
	_ = table.Append("AWB Number", shipment.AWBNumber)
	_ = table.Append("Status", shipment.Status)

	if shipment.Carrier != nil {
		_ = table.Append("Airline", fmt.Sprintf("%s (%s)", shipment.Carrier.Name, shipment.Carrier.IATA))
	}

	if shipment.Origin != nil {
		_ = table.Append("Origin", shipment.Origin.Name)
	}

	if shipment.Destination != nil {
		_ = table.Append("Destination", shipment.Destination.Name)
	}

	_ = table.Append("Pieces", formatIntPtr(shipment.Pieces))
	_ = table.Append("Weight (kg)", formatFloatPtr(shipment.WeightKG))
	_ = table.Append("Changed At", formatTimePtr(shipment.ChangedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if len(shipment.Movements) > 0 {
		fmt.Println()
		fmt.Println("Movements:")

		return outputAirMovementsTable(shipment.Movements)
	}

	return nil
}

func outputAirMovementsTable(movements []tracking.AirMovement) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Event", "Status", "Airport", "Flight", "Time")

	for _, movement := range movements {
		_ = table.Append(movement.Event, movement.Status, movement.Airport.Name,
			formatStringPtr(movement.FlightNumber), formatTime(movement.Timestamp))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputAirShipmentList(shipments []tracking.AirShipment) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(shipments)
	case OutputFormatYAML:
		return outputYAML(shipments)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "AWB Number", "Status", "Changed At")

		for _, shipment := range shipments {
			_ = table.Append(
				strconv.FormatInt(shipment.ID, 10),
				shipment.AWBNumber,
				shipment.Status,
				formatTimePtr(shipment.ChangedAt),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		fmt.Printf("\n%d air shipments\n", len(shipments))

		return nil
	}
}
