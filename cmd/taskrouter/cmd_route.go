package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"taskrouter/internal/logging"
	"taskrouter/internal/routing"
	"taskrouter/internal/usage"

	"github.com/spf13/cobra"
)

var (
	routeAllow []string
	routeCheck bool
)

// routeCmd extracts the route choice from a model response.
var routeCmd = &cobra.Command{
	Use:   "route [response-text]",
	Short: "Extract the <CHOICE> route from a model response",
	Long: `Reads a model response (argument or stdin) and extracts the route wrapped
in <CHOICE>...</CHOICE> markers, validating it against the allow-list.

With --check, only reports whether the <ANALYSIS> and <CHOICE> marker pairs
are present, without extracting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringSliceVar(&routeAllow, "routes", nil, "allowed route names (default: from config)")
	routeCmd.Flags().BoolVar(&routeCheck, "check", false, "only check marker presence")
}

func runRoute(cmd *cobra.Command, args []string) error {
	text, err := routeInput(args)
	if err != nil {
		return err
	}

	if routeCheck {
		if routing.HasRouteMarkers(text) {
			fmt.Println("markers present")
			return nil
		}
		return fmt.Errorf("response is missing <ANALYSIS> or <CHOICE> markers")
	}

	allowed := routeAllow
	if len(allowed) == 0 {
		a, err := newApp()
		if err != nil {
			return err
		}
		allowed = a.cfg.Routing.Routes
	}

	choice, err := routing.ExtractRouteChoice(text, allowed)
	if err != nil {
		logging.Routing("Extraction failed: %v", err)
		return err
	}
	logging.Routing("Extracted route %q from %d chars of response", choice, len(text))

	// Account for the response we just parsed.
	if tracker, terr := usage.NewTracker(workspace); terr == nil {
		tracker.Track(cmd.Context(), usage.Event{
			Operation:    "route",
			InputTokens:  usage.EstimateTokens(text),
			OutputTokens: usage.EstimateTokens(choice),
		})
		_ = tracker.Save()
	}

	fmt.Println(choice)
	return nil
}

// routeInput returns the response text from the argument, or stdin when no
// argument (or "-") is given.
func routeInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no response text provided")
	}
	return text, nil
}
