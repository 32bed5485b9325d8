package types

import (
	"slices"

	ierr "github.com/hypnotizedent/printshop-os-sub011/internal/errors"
)

// ServiceType is the print method used for a job
type ServiceType string

const (
	ServiceScreenPrint ServiceType = "screen"
	ServiceEmbroidery  ServiceType = "embroidery"
	ServiceLaser       ServiceType = "laser"
	ServiceTransfer    ServiceType = "transfer"
	ServiceDTG         ServiceType = "dtg"
	ServiceSublimation ServiceType = "sublimation"
)

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) Validate() error {
	allowedValues := []string{
		ServiceScreenPrint.String(),
		ServiceEmbroidery.String(),
		ServiceLaser.String(),
		ServiceTransfer.String(),
		ServiceDTG.String(),
		ServiceSublimation.String(),
	}
	if !slices.Contains(allowedValues, string(s)) {
		return ierr.NewError("invalid service type").
			WithHint("Service must be one of screen, embroidery, laser, transfer, dtg, sublimation").
			WithReportableDetails(map[string]any{"service": string(s)}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RushType is the turnaround level requested for a job
type RushType string

const (
	RushStandard RushType = "standard"
	RushTwoDay   RushType = "2-day"
	RushNextDay  RushType = "next-day"
	RushSameDay  RushType = "same-day"
)

func (r RushType) String() string {
	return string(r)
}

func (r RushType) Validate() error {
	allowedValues := []string{
		RushStandard.String(),
		RushTwoDay.String(),
		RushNextDay.String(),
		RushSameDay.String(),
	}
	if !slices.Contains(allowedValues, string(r)) {
		return ierr.NewError("invalid rush type").
			WithHint("Rush type must be one of standard, 2-day, next-day, same-day").
			WithReportableDetails(map[string]any{"rush_type": string(r)}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PrintSize is the artwork size class for a print
type PrintSize string

const (
	PrintSizeS     PrintSize = "S"
	PrintSizeM     PrintSize = "M"
	PrintSizeL     PrintSize = "L"
	PrintSizeXL    PrintSize = "XL"
	PrintSizeJumbo PrintSize = "Jumbo"
)

func (p PrintSize) String() string {
	return string(p)
}

func (p PrintSize) Validate() error {
	allowedValues := []string{
		PrintSizeS.String(),
		PrintSizeM.String(),
		PrintSizeL.String(),
		PrintSizeXL.String(),
		PrintSizeJumbo.String(),
	}
	if !slices.Contains(allowedValues, string(p)) {
		return ierr.NewError("invalid print size").
			WithHint("Print size must be one of S, M, L, XL, Jumbo").
			WithReportableDetails(map[string]any{"print_size": string(p)}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AddOn is a per-unit finishing service
type AddOn string

const (
	AddOnFold    AddOn = "fold"
	AddOnTicket  AddOn = "ticket"
	AddOnRelabel AddOn = "relabel"
	AddOnHanger  AddOn = "hanger"
)

func (a AddOn) String() string {
	return string(a)
}

func (a AddOn) Validate() error {
	allowedValues := []string{
		AddOnFold.String(),
		AddOnTicket.String(),
		AddOnRelabel.String(),
		AddOnHanger.String(),
	}
	if !slices.Contains(allowedValues, string(a)) {
		return ierr.NewError("invalid add-on").
			WithHint("Add-on must be one of fold, ticket, relabel, hanger").
			WithReportableDetails(map[string]any{"add_on": string(a)}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CalculationOptions control cache and ledger side effects of a calculation
type CalculationOptions struct {
	// UseCache enables the fingerprint cache read and write for this call
	UseCache bool `json:"use_cache"`

	// DryRun computes the quote without appending to the calculation ledger
	DryRun bool `json:"dry_run"`
}

// DefaultCalculationOptions returns the options used when the caller
// provides none: cached, ledgered.
func DefaultCalculationOptions() CalculationOptions {
	return CalculationOptions{UseCache: true, DryRun: false}
}
