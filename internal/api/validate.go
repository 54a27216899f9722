package api

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateSubmitRequest checks field presence via struct tags and rejects
// non-finite values. NaN and the infinities cannot arrive through JSON
// numbers, but the check keeps the ingest contract independent of the
// decoder.
func validateSubmitRequest(req *submitTelemetryRequest) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return fmt.Errorf("field %s is required", jsonFieldName(errs[0].Field()))
		}
		return err
	}

	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return errors.New("value must be a finite number")
	}

	return nil
}

// jsonFieldName maps the Go struct field names validator reports back to the
// wire names callers actually sent.
func jsonFieldName(field string) string {
	switch field {
	case "CustomerID":
		return "customerId"
	case "DeviceID":
		return "deviceId"
	case "EventID":
		return "eventId"
	case "RecordedAt":
		return "recordedAt"
	case "Type":
		return "type"
	case "Unit":
		return "unit"
	default:
		return field
	}
}
