package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
)

// outputResult writes an API result in the configured output format.
func outputResult(out io.Writer, result *portalcx.Result) error {
	return writeOutput(out, result.Value, func(out io.Writer) error {
		return displayResultTable(out, result)
	})
}

func displayResultTable(out io.Writer, result *portalcx.Result) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	_ = table.Append([]string{"HTTP Status", strconv.Itoa(result.StatusCode)})

	switch {
	case result.IsText():
		_ = table.Append([]string{"Response", result.Text()})
	case result.Map() != nil:
		envelope, err := result.Envelope()
		if err != nil {
			return err
		}

		_ = table.Append([]string{"Status", strconv.Itoa(envelope.Status)})
		_ = table.Append([]string{"Message", envelope.Message})

		if envelope.Data != nil {
			_ = table.Append([]string{"Data", compactJSON(envelope.Data)})
		}
	default:
		_ = table.Append([]string{"Response", compactJSON(result.Value)})
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func compactJSON(value interface{}) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}

	return string(data)
}
