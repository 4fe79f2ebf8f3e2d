package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChargeKind distinguishes what a ledger entry was billed for.
type ChargeKind string

const (
	ChargeImpression ChargeKind = "impression"
	ChargeClick      ChargeKind = "click"
)

// Charge is a record of a single successful budget consumption. It is
// written in the same transaction as the decrement.
type Charge struct {
	ID            int64
	Token         uuid.UUID
	SponsorshipID int64
	ProductID     int64
	Kind          ChargeKind
	Cost          int64
	// RemainingBudget and RemainingDaily are the balances after the charge.
	RemainingBudget int64
	RemainingDaily  int64
	// Exhausted is set when this charge switched the sponsorship off.
	Exhausted bool
	CreatedAt time.Time
}

// Entity names the kind of record a mutation event refers to.
type Entity string

const (
	EntityProduct     Entity = "product"
	EntitySponsorship Entity = "sponsorship"
)

// MutationEvent notifies that catalog or sponsorship state changed and
// cached rankings may be stale.
type MutationEvent struct {
	Version int       `json:"version"`
	Entity  Entity    `json:"entity"`
	Op      string    `json:"op"`
	ID      int64     `json:"id"`
	TS      time.Time `json:"ts"`
}

const MutationEventVersion = 1

func (e MutationEvent) Validate() error {
	if e.Version != MutationEventVersion {
		return fmt.Errorf("version must be %d", MutationEventVersion)
	}
	switch e.Entity {
	case EntityProduct, EntitySponsorship:
	default:
		return fmt.Errorf("entity must be product|sponsorship")
	}
	if e.Op == "" {
		return fmt.Errorf("op is required")
	}
	if e.TS.IsZero() {
		return fmt.Errorf("ts is required")
	}
	return nil
}
