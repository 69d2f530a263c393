// Package service renders network information for the CLI.
package service

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/dotX12/snetcalc/internal/domain"
)

// Format selects how addresses are rendered.
type Format int

const (
	// FormatDotted renders dotted decimal notation.
	FormatDotted Format = iota
	// FormatBinary renders 32-character binary strings.
	FormatBinary
	// FormatDebug renders the binary and dotted decimal forms side by
	// side.
	FormatDebug
)

// Reporter writes network summaries and address listings to an output
// writer.
type Reporter struct {
	logger zerolog.Logger
	out    io.Writer
	format Format
}

// NewReporter creates a new reporter service
func NewReporter(logger zerolog.Logger, out io.Writer, format Format) *Reporter {
	return &Reporter{
		logger: logger,
		out:    out,
		format: format,
	}
}

// Summary writes the class, subnet count and hosts-per-subnet block.
func (r *Reporter) Summary(network domain.Network) error {
	r.logger.Debug().
		Stringer("class", network.Class()).
		Msg("Rendering network summary")

	_, err := fmt.Fprintln(r.out, network)
	return err
}

// Subnets writes every usable subnet base address, one per line.
func (r *Reporter) Subnets(network domain.Network) error {
	count, _ := network.NumSubnets()
	r.logger.Debug().
		Uint32("subnets", count).
		Msg("Listing subnet base addresses")

	for address := range network.Subnets() {
		if _, err := fmt.Fprintln(r.out, r.render(address)); err != nil {
			return err
		}
	}
	return nil
}

// Addresses writes every address in the network suffixed with its role
// label, one per line.
func (r *Reporter) Addresses(network domain.Network) error {
	r.logger.Debug().Msg("Listing all network addresses")

	for addressType := range network.Addresses() {
		if _, err := fmt.Fprintf(r.out, "%s %s\n", r.render(addressType.Address), addressType); err != nil {
			return err
		}
	}
	return nil
}

// render formats a single address according to the configured format.
func (r *Reporter) render(address domain.Address) string {
	switch r.format {
	case FormatBinary:
		return address.Binary()
	case FormatDebug:
		return address.Debug()
	default:
		return address.String()
	}
}
