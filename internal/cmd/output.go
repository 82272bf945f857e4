package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"cfgstore/internal/configstore"
)

// ErrFailureResult is returned by a command whose store operation reported
// a failure. The failure itself has already been printed.
var ErrFailureResult = errors.New("operation failed")

// report prints res and maps a failure status to ErrFailureResult.
// confirm marks res as a confirmation message rather than data.
func report(app *App, res configstore.Result, confirm bool) error {
	if app.JSON {
		if err := json.NewEncoder(app.Out).Encode(res); err != nil {
			return err
		}
	} else if res.OK() {
		printDetails(app, res.Details, confirm)
	} else {
		fmt.Fprintf(app.Err, "%s %v\n", app.WarnColor("error:"), res.Details)
	}

	if !res.OK() {
		return ErrFailureResult
	}
	return nil
}

func printDetails(app *App, details any, confirm bool) {
	switch d := details.(type) {
	case string:
		if confirm {
			fmt.Fprintln(app.Out, app.SuccessColor(d))
			return
		}
		fmt.Fprint(app.Out, d)
		if d != "" && !strings.HasSuffix(d, "\n") {
			fmt.Fprintln(app.Out)
		}
	case []string:
		for _, s := range d {
			fmt.Fprintln(app.Out, s)
		}
	case map[string]string:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(app.Out, "%s = %s\n", k, d[k])
		}
	default:
		fmt.Fprintln(app.Out, d)
	}
}
