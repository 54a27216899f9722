package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// customerCmd represents the customer command
var customerCmd = &cobra.Command{
	Use:     "customer",
	Aliases: []string{"c", "customers"},
	Short:   "Manage and list customers",
	Long:    `Commands for listing the tenants known to this instance.`,
}

// customerListCmd represents the customer list command
var customerListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all customers",
	Run:     runCustomerList,
}

func runCustomerList(cmd *cobra.Command, args []string) {
	setupLogger()

	_, eventStore, err := initialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	customers, err := eventStore.ListCustomers(cmd.Context())
	if err != nil {
		logger.Error("Failed to fetch customers", "error", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch customers: %v\n", err)
		os.Exit(1)
	}

	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "CUSTOMER ID\tNAME\tCREATED AT")
	fmt.Fprintln(w, "-----------\t----\t----------")

	for _, customer := range customers {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			customer.CustomerID,
			customer.Name,
			customer.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		)
	}

	logger.Debug("Customer list completed", "count", len(customers))
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerListCmd)
}
