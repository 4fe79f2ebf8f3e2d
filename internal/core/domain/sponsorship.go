package domain

import "time"

// Status is the administrative lifecycle state of a sponsorship.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusActive   Status = "ACTIVE"
	StatusPaused   Status = "PAUSED"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusActive, StatusPaused, StatusRejected:
		return true
	}
	return false
}

// Sponsorship is a paid campaign tying one product to a budget and an
// active date window. Budgets are stored in integer monetary units
// (e.g. cents).
type Sponsorship struct {
	ID         int64
	ProductID  int64
	BusinessID int64
	StartDate  time.Time
	EndDate    time.Time
	// Budget is the remaining total spend capacity.
	Budget int64
	// DailyBudget is the remaining capacity for the current serving window.
	DailyBudget int64
	// DailyLimit is the value DailyBudget is restored to when the serving
	// window resets.
	DailyLimit int64
	// InitialBudget is the total amount ever funded; spend to date is
	// InitialBudget - Budget.
	InitialBudget int64
	Status        Status
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InWindow reports whether now falls within [StartDate, EndDate].
func (s *Sponsorship) InWindow(now time.Time) bool {
	return !now.Before(s.StartDate) && !now.After(s.EndDate)
}

// Billable reports whether the sponsorship may be charged at all at the
// given instant, ignoring the amount.
func (s *Sponsorship) Billable(now time.Time) bool {
	return s.Status == StatusActive && s.IsActive && s.InWindow(now)
}

// Spent returns the amount consumed over the sponsorship lifetime.
func (s *Sponsorship) Spent() int64 {
	return s.InitialBudget - s.Budget
}

// NewSponsorship describes a sponsorship creation request.
type NewSponsorship struct {
	ProductID   int64
	BusinessID  int64
	StartDate   time.Time
	EndDate     time.Time
	Budget      int64
	DailyBudget int64
}

// Validate checks the request before anything is persisted.
func (n NewSponsorship) Validate() error {
	switch {
	case n.ProductID <= 0:
		return NewValidationError("product_id", "must be positive")
	case n.BusinessID <= 0:
		return NewValidationError("business_id", "must be positive")
	case n.StartDate.IsZero() || n.EndDate.IsZero():
		return NewValidationError("start_date", "start and end dates are required")
	case !n.EndDate.After(n.StartDate):
		return NewValidationError("end_date", "must be after start_date")
	case n.Budget <= 0:
		return NewValidationError("budget", "must be positive")
	case n.DailyBudget <= 0:
		return NewValidationError("daily_budget", "must be positive")
	case n.DailyBudget > n.Budget:
		return NewValidationError("daily_budget", "must not exceed budget")
	}
	return nil
}

// Action is an administrative transition requested by an operator.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionActivate Action = "activate"
	ActionPause    Action = "pause"
	ActionReject   Action = "reject"
)

// Transition describes the guarded update performed for an Action: the
// statuses it may start from, the resulting status and the resulting
// IsActive gate.
type Transition struct {
	Action   Action
	From     []Status
	To       Status
	IsActive bool
}

var transitions = map[Action]Transition{
	ActionApprove: {
		Action: ActionApprove,
		From:   []Status{StatusPending},
		To:     StatusApproved,
	},
	// ACTIVE is accepted so an operator can re-enable a sponsorship that
	// was switched off by budget exhaustion.
	ActionActivate: {
		Action:   ActionActivate,
		From:     []Status{StatusApproved, StatusPaused, StatusActive},
		To:       StatusActive,
		IsActive: true,
	},
	ActionPause: {
		Action: ActionPause,
		From:   []Status{StatusPending, StatusApproved, StatusActive, StatusPaused},
		To:     StatusPaused,
	},
	ActionReject: {
		Action: ActionReject,
		From:   []Status{StatusPending},
		To:     StatusRejected,
	},
}

// TransitionFor returns the transition rule for an action.
func TransitionFor(a Action) (Transition, bool) {
	t, ok := transitions[a]
	return t, ok
}

// Allows reports whether the transition may start from s.
func (t Transition) Allows(s Status) bool {
	for _, f := range t.From {
		if f == s {
			return true
		}
	}
	return false
}

// SpendReport aggregates what a sponsorship has consumed so far.
type SpendReport struct {
	SponsorshipID   int64
	InitialBudget   int64
	RemainingBudget int64
	RemainingDaily  int64
	Spent           int64
	Impressions     int64
	ImpressionCost  int64
	Clicks          int64
	ClickCost       int64
}
