// taxctl computes a federal or state income tax return from a JSON return
// file, using the same engine the API serves. Amounts in the file are decimal
// dollar strings; output is the engine's cents-denominated result as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ustaxcalc/ustax-api/internal/constants"
	"github.com/ustaxcalc/ustax-api/internal/handlers"
	"github.com/ustaxcalc/ustax-api/internal/logger"
	"github.com/ustaxcalc/ustax-api/internal/services"
	"github.com/ustaxcalc/ustax-api/internal/states"
)

var rootCmd = &cobra.Command{
	Use:   "taxctl",
	Short: "Compute 2025 US federal and state income tax returns",
	Long: `taxctl runs the tax engine against a JSON return file.

The return file uses decimal-dollar amounts ("52000.00") and ISO dates;
see the federal and state subcommands for the expected shape. Results are
printed as JSON with every monetary field in integer cents.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Keep engine logs off the CLI output unless asked for.
		logger.InitLoggerWithConfig(logger.LoggerConfig{Level: "error", Stage: constants.StageLocal})
	},
}

var federalCmd = &cobra.Command{
	Use:   "federal",
	Short: "Compute a federal return",
	RunE:  runFederal,
}

var stateCmd = &cobra.Command{
	Use:   "state CODE",
	Short: "Compute a state return (federal is computed first)",
	Args:  cobra.ExactArgs(1),
	RunE:  runState,
}

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List supported jurisdictions",
	RunE:  runStates,
}

func init() {
	rootCmd.AddCommand(federalCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(statesCmd)

	federalCmd.Flags().StringP("file", "f", "", "Path to the JSON return file")
	federalCmd.Flags().Bool("debug", false, "Dump the full result structure to stderr")
	stateCmd.Flags().StringP("file", "f", "", "Path to the JSON return file")
	stateCmd.Flags().Bool("debug", false, "Dump the full result structure to stderr")
}

func loadReturn(cmd *cobra.Command, out any) error {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return fmt.Errorf("return file required: taxctl %s -f return.json", cmd.Name())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read return file: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("cannot parse return file: %w", err)
	}
	return nil
}

func printResult(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func reportWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func runFederal(cmd *cobra.Command, args []string) error {
	var req handlers.TaxReturnRequest
	if err := loadReturn(cmd, &req); err != nil {
		return err
	}

	input, warnings := req.ToEngineInput()
	reportWarnings(warnings)

	result := services.NewCalculationService().CalculateFederal(context.Background(), input)

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		spew.Fdump(os.Stderr, result)
	}
	return printResult(result)
}

func runState(cmd *cobra.Command, args []string) error {
	code := args[0]

	var req handlers.StateReturnRequest
	if err := loadReturn(cmd, &req); err != nil {
		return err
	}

	input, warnings := req.ToEngineInput()

	svc := services.NewCalculationService()
	federalResult := svc.CalculateFederal(context.Background(), input)

	stateInput, warnings := req.ToStateInput(code, federalResult, input, warnings)
	reportWarnings(warnings)

	stateResult, err := svc.CalculateState(context.Background(), code, stateInput)
	if err != nil {
		return err
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		spew.Fdump(os.Stderr, stateResult)
	}
	return printResult(stateResult)
}

func runStates(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tINCOME TAX\tSTATE EITC")
	for _, cfg := range states.Configs() {
		tax := "yes"
		if !cfg.HasIncomeTax {
			tax = "no"
		}
		eitc := "-"
		if cfg.EITCPercent > 0 {
			eitc = fmt.Sprintf("%.0f%% of federal", cfg.EITCPercent*100)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cfg.Code, cfg.Name, tax, eitc)
	}
	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
