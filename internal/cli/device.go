package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// deviceCmd represents the device command
var deviceCmd = &cobra.Command{
	Use:     "device",
	Aliases: []string{"d", "devices"},
	Short:   "Manage and list devices",
	Long:    `Commands for listing the devices registered for a customer.`,
}

// deviceListCmd represents the device list command
var deviceListCmd = &cobra.Command{
	Use:     "list <customer_id>",
	Aliases: []string{"ls"},
	Short:   "List a customer's devices",
	Long:    `List all devices belonging to a customer with their ID, label, and location.`,
	Args:    cobra.ExactArgs(1),
	Run:     runDeviceList,
}

func runDeviceList(cmd *cobra.Command, args []string) {
	setupLogger()

	_, eventStore, err := initialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	customerID := args[0]

	devices, err := eventStore.ListDevices(cmd.Context(), customerID)
	if err != nil {
		logger.Error("Failed to fetch devices", "customer_id", customerID, "error", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch devices: %v\n", err)
		os.Exit(1)
	}

	if len(devices) == 0 {
		fmt.Println("No devices found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "DEVICE ID\tLABEL\tLOCATION\tCREATED AT")
	fmt.Fprintln(w, "---------\t-----\t--------\t----------")

	for _, device := range devices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			device.DeviceID,
			device.Label,
			device.Location,
			device.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		)
	}

	logger.Debug("Device list completed", "count", len(devices))
}

func init() {
	rootCmd.AddCommand(deviceCmd)
	deviceCmd.AddCommand(deviceListCmd)
}
