package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mstanic/telemetry-hub/internal/models"
	"github.com/mstanic/telemetry-hub/internal/telemetry"
)

var (
	eventHours       int
	submitEventID    string
	submitType       string
	submitValue      float64
	submitUnit       string
	submitRecordedAt string
)

// eventCmd represents the event command
var eventCmd = &cobra.Command{
	Use:     "event",
	Aliases: []string{"e", "events"},
	Short:   "Submit and inspect telemetry events",
	Long:    `Commands for submitting telemetry events and inspecting a device's recent window.`,
}

// eventListCmd represents the event list command
var eventListCmd = &cobra.Command{
	Use:     "list <customer_id> <device_id>",
	Aliases: []string{"ls"},
	Short:   "List a device's events in the trailing window",
	Long: `List a device's telemetry events from the trailing window, oldest first.

Examples:
  telemetry-hub event list acme-123 dev-001
  telemetry-hub event list acme-123 dev-001 --hours 6`,
	Args: cobra.ExactArgs(2),
	Run:  runEventList,
}

// eventInsightsCmd represents the event insights command
var eventInsightsCmd = &cobra.Command{
	Use:   "insights <customer_id> <device_id>",
	Short: "Show aggregate insights for a device's trailing window",
	Args:  cobra.ExactArgs(2),
	Run:   runEventInsights,
}

// eventSubmitCmd represents the event submit command
var eventSubmitCmd = &cobra.Command{
	Use:   "submit <customer_id> <device_id>",
	Short: "Submit a telemetry event",
	Long: `Submit a single telemetry event for a device. When --event-id is omitted a
random one is generated, which makes the submission non-idempotent; pass an
explicit ID to get dedup across retries.

Examples:
  telemetry-hub event submit acme-123 dev-001 --type temperature --value 21.5 --unit C
  telemetry-hub event submit acme-123 dev-001 --type temperature --value 21.5 --unit C --event-id evt-x1`,
	Args: cobra.ExactArgs(2),
	Run:  runEventSubmit,
}

func newService() *telemetry.Service {
	setupLogger()

	settings, eventStore, err := initialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return telemetry.NewService(eventStore, settings.DefaultUnit)
}

func runEventList(cmd *cobra.Command, args []string) {
	service := newService()

	events, err := service.Query(cmd.Context(), args[0], args[1], eventHours)
	if err != nil {
		logger.Error("Failed to query events", "customer_id", args[0], "device_id", args[1], "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printJSON(events)
	logger.Debug("Event list completed", "count", len(events))
}

func runEventInsights(cmd *cobra.Command, args []string) {
	service := newService()

	insights, err := service.Insights(cmd.Context(), args[0], args[1], eventHours)
	if err != nil {
		logger.Error("Failed to compute insights", "customer_id", args[0], "device_id", args[1], "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printJSON(insights)
}

func runEventSubmit(cmd *cobra.Command, args []string) {
	service := newService()

	eventID := submitEventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	recordedAt := time.Now().UTC()
	if submitRecordedAt != "" {
		parsed, err := time.Parse(time.RFC3339, submitRecordedAt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --recorded-at, expected RFC3339: %v\n", err)
			os.Exit(1)
		}
		recordedAt = parsed.UTC()
	}

	event := &models.TelemetryEvent{
		CustomerID: args[0],
		DeviceID:   args[1],
		EventID:    eventID,
		RecordedAt: recordedAt,
		Type:       submitType,
		Value:      submitValue,
		Unit:       submitUnit,
	}

	result, err := service.Submit(cmd.Context(), event)
	if err != nil {
		logger.Error("Failed to submit event", "event_id", eventID, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printJSON(struct {
		EventID     string `json:"eventId"`
		IsDuplicate bool   `json:"isDuplicate"`
	}{
		EventID:     result.EventID,
		IsDuplicate: result.Duplicate,
	})
}

func printJSON(v any) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal response", "error", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to format response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}

func init() {
	rootCmd.AddCommand(eventCmd)

	eventCmd.PersistentFlags().IntVar(&eventHours, "hours", telemetry.DefaultWindowHours, "Trailing window size in hours")
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventInsightsCmd)

	eventSubmitCmd.Flags().StringVar(&submitEventID, "event-id", "", "Event ID used for deduplication (generated when omitted)")
	eventSubmitCmd.Flags().StringVar(&submitType, "type", "temperature", "Reading category")
	eventSubmitCmd.Flags().Float64Var(&submitValue, "value", 0, "Numeric reading")
	eventSubmitCmd.Flags().StringVar(&submitUnit, "unit", "C", "Unit label")
	eventSubmitCmd.Flags().StringVar(&submitRecordedAt, "recorded-at", "", "Device-side timestamp, RFC3339 (defaults to now)")
	eventCmd.AddCommand(eventSubmitCmd)
}
