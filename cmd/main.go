package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotX12/snetcalc/internal/domain"
	"github.com/dotX12/snetcalc/internal/logger"
	"github.com/dotX12/snetcalc/internal/service"
)

var (
	listSubnets bool
	listAll     bool
	binaryOut   bool
	debugOut    bool
	logLevel    string
	version     = "dev" // set at build time via -ldflags
)

func main() {
	log := logger.New("info")
	logger.SetGlobal(log)

	rootCmd := &cobra.Command{
		Use:   "snetcalc [network]",
		Short: "Subnet calculator for IPv4 networks",
		Long: `snetcalc provides subnet information about an IPv4 network, and
optionally lists all hosts, subnet addresses and broadcast addresses.

In many cases, IPv4 network information is fairly obvious when presented
with dotted decimal notation, but subnets which cross the octet boundary
are much less obvious. This is where snetcalc can help.

When invoked without flags, snetcalc will determine the class of the
network, number of subnets and hosts per subnet.

The network is given in CIDR notation (e.g. 192.168.13.160/28).`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				log = logger.New(logLevel)
				logger.SetGlobal(log)
			}
		},
		Run: runNetwork,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&listSubnets, "list-snets", "s", false, "List all base subnet network addresses")
	rootCmd.Flags().BoolVarP(&listAll, "list-all", "a", false, "List every network, subnet, host and broadcast address")
	rootCmd.Flags().BoolVarP(&binaryOut, "binary", "b", false, "Render addresses as 32-bit binary strings")
	rootCmd.Flags().BoolVarP(&debugOut, "debug", "d", false, "Render addresses in binary and dotted decimal")
	rootCmd.MarkFlagsMutuallyExclusive("list-snets", "list-all")
	rootCmd.MarkFlagsMutuallyExclusive("binary", "debug")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runNetwork(cmd *cobra.Command, args []string) {
	log := logger.Global()

	network, err := domain.ParseCIDR(args[0])
	if err != nil {
		log.Fatal().Err(err).Str("network", args[0]).Msg("Invalid network")
	}

	format := service.FormatDotted
	switch {
	case binaryOut:
		format = service.FormatBinary
	case debugOut:
		format = service.FormatDebug
	}

	reporter := service.NewReporter(log.Logger, cmd.OutOrStdout(), format)

	switch {
	case listSubnets:
		err = reporter.Subnets(network)
	case listAll:
		err = reporter.Addresses(network)
	default:
		err = reporter.Summary(network)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}
}
