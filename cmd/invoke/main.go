package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cloud-demo-apps/internal/invoke"
)

var (
	functionName string
	name         string
	shape        string
	omitName     bool
	raw          bool
	region       string
	timeout      time.Duration
	verbose      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

// getFunctionName retrieves the function name from command flags or environment
func getFunctionName(cmd *cobra.Command) string {
	if cmd.Flags().Changed("function") {
		return functionName
	}
	if fn := os.Getenv("DEMO_FUNCTION"); fn != "" {
		return fn
	}
	return functionName
}

func init() {
	shapeNames := make([]string, 0, len(invoke.Shapes))
	for _, s := range invoke.Shapes {
		shapeNames = append(shapeNames, string(s))
	}

	rootCmd = &cobra.Command{
		Use:   "invoke",
		Short: "Invoke a deployed echo function",
		Long: `invoke sends a greeting event to a deployed echo function and prints
the status code and body it returns.`,
		Args:         cobra.NoArgs,
		RunE:         runInvoke,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&functionName, "function", "f", "", "Function name or ARN (defaults to $DEMO_FUNCTION)")
	rootCmd.Flags().StringVarP(&name, "name", "n", "", "Name to greet")
	rootCmd.Flags().StringVarP(&shape, "shape", "s", string(invoke.ShapeFlat), "Event shape ("+strings.Join(shapeNames, ", ")+")")
	rootCmd.Flags().BoolVar(&omitName, "no-name", false, "Send the event without a name")
	rootCmd.Flags().BoolVar(&raw, "raw", false, "Print the raw response payload")
	rootCmd.Flags().StringVar(&region, "region", "", "AWS region (defaults to the environment)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Invocation timeout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.RegisterFlagCompletionFunc("shape", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return shapeNames, cobra.ShellCompDirectiveNoFileComp
	})
}

func runInvoke(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	function := getFunctionName(cmd)
	if function == "" {
		return fmt.Errorf("function name is required (use --function flag or DEMO_FUNCTION env var)")
	}

	s, err := invoke.ParseShape(shape)
	if err != nil {
		return err
	}

	// Without --name the event carries no name so the function falls back to anonymous
	omit := omitName || !cmd.Flags().Changed("name")

	payload, err := invoke.BuildPayload(s, name, omit)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client, err := invoke.NewClientFromConfig(ctx, region)
	if err != nil {
		return err
	}

	result, err := client.Invoke(ctx, function, payload)
	if err != nil {
		return err
	}

	logrus.WithField("version", result.ExecutedVersion).Debug("Invocation complete")

	if raw {
		fmt.Fprintln(cmd.OutOrStdout(), string(result.Payload))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), invoke.Render(result.Envelope))
	return nil
}
