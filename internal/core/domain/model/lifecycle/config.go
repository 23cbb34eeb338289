package lifecycle

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"
)

// ErrConfigIsNotConstructed is returned when a zero-value Config is used.
var ErrConfigIsNotConstructed = errors.New("Config must be created via NewConfig or RestoreConfig")

// Settings is the operator supplied part of a lifecycle configuration.
// Configure replaces all of it at once.
type Settings struct {
	PurchaseBudget        AmountSpec
	ExecutionBudget       AmountSpec
	TargetProfit          AmountSpec
	Milestones            []Milestone
	CreditPeriodDays      int
	ProjectType           ProjectType
	EstimatedDeliveryDate *time.Time
	Notes                 string
}

// Config is the lifecycle configuration of one order (1:1 with the order).
//
// Invariants:
//   - orderID is a valid identifier and never changes
//   - the three budget specs are constructed AmountSpecs
//   - milestone ids are unique; slice order is display and settlement order
//   - creditPeriodDays >= 0
//   - status is one of the seven lifecycle statuses
//
// Milestone amounts are independent of each other and of the budgets; their
// sum is not required to match the order value.
type Config struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	purchaseBudget        AmountSpec
	executionBudget       AmountSpec
	targetProfit          AmountSpec
	milestones            []Milestone
	creditPeriodDays      int
	projectType           ProjectType
	estimatedDeliveryDate *time.Time
	notes                 string
	status                Status
	isConstructed         bool
}

// NewConfig creates the configuration for an order on its first submit.
// The status starts at New.
func NewConfig(orderID kernel.UUID, settings Settings) (Config, error) {
	return RestoreConfig(orderID, settings, New)
}

// RestoreConfig rebuilds a configuration with an explicit status, for persistence.
func RestoreConfig(orderID kernel.UUID, settings Settings, status Status) (Config, error) {
	c := Config{isConstructed: true}

	if err := errors.Join(
		c.setOrderID(orderID),
		c.setSettings(settings),
		c.setStatus(status),
	); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports whether the configuration was built through a constructor.
func (c Config) Validate() error {
	if !c.isConstructed {
		return ErrConfigIsNotConstructed
	}
	return nil
}

func (c Config) OrderID() kernel.UUID {
	return c.orderID
}

func (c Config) PurchaseBudget() AmountSpec {
	return c.purchaseBudget
}

func (c Config) ExecutionBudget() AmountSpec {
	return c.executionBudget
}

func (c Config) TargetProfit() AmountSpec {
	return c.targetProfit
}

// Milestones returns a copy of the milestones in insertion order.
func (c Config) Milestones() []Milestone {
	return slices.Clone(c.milestones)
}

// Milestone returns the milestone with the given id.
func (c Config) Milestone(id kernel.UUID) (Milestone, error) {
	i, err := c.milestoneIndex(id)
	if err != nil {
		return Milestone{}, err
	}
	return c.milestones[i], nil
}

func (c Config) CreditPeriodDays() int {
	return c.creditPeriodDays
}

func (c Config) ProjectType() ProjectType {
	return c.projectType
}

// EstimatedDeliveryDate returns nil when no date was given.
func (c Config) EstimatedDeliveryDate() *time.Time {
	if c.estimatedDeliveryDate == nil {
		return nil
	}
	d := *c.estimatedDeliveryDate
	return &d
}

func (c Config) Notes() string {
	return c.notes
}

func (c Config) Status() Status {
	return c.status
}

// Settings returns the operator supplied part of the configuration.
func (c Config) Settings() Settings {
	return Settings{
		PurchaseBudget:        c.purchaseBudget,
		ExecutionBudget:       c.executionBudget,
		TargetProfit:          c.targetProfit,
		Milestones:            c.Milestones(),
		CreditPeriodDays:      c.creditPeriodDays,
		ProjectType:           c.projectType,
		EstimatedDeliveryDate: c.EstimatedDeliveryDate(),
		Notes:                 c.notes,
	}
}

// Configure returns a copy with every Settings field replaced. The order id
// and status are kept.
func (c Config) Configure(settings Settings) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	next := c
	if err := next.setSettings(settings); err != nil {
		return Config{}, err
	}
	return next, nil
}

// Transition returns a copy moved to target. Any known status is reachable
// from any other, including backwards moves.
func (c Config) Transition(target Status) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	status, err := c.status.TransitionTo(target)
	if err != nil {
		return Config{}, err
	}

	next := c.clone()
	next.status = status
	return next, nil
}

// AddMilestone returns a copy with m appended. A milestone id already present
// in the configuration is rejected.
func (c Config) AddMilestone(m Milestone) (Config, error) {
	if err := errors.Join(c.Validate(), m.Validate()); err != nil {
		return Config{}, err
	}
	if _, err := c.milestoneIndex(m.ID()); err == nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause(
			"milestone id",
			fmt.Errorf("%s is already used in this order", m.ID()),
		)
	}

	next := c.clone()
	next.milestones = append(next.milestones, m)
	return next, nil
}

// UpdateMilestone returns a copy with the patched fields of one milestone
// replaced. An unknown id fails with errs.ObjectNotFoundError.
func (c Config) UpdateMilestone(id kernel.UUID, patch MilestonePatch) (Config, error) {
	return c.editMilestone(id, func(m Milestone) (Milestone, error) {
		return m.apply(patch)
	})
}

// RemoveMilestone returns a copy without the milestone. Removing the last
// milestone is allowed. An unknown id fails with errs.ObjectNotFoundError.
func (c Config) RemoveMilestone(id kernel.UUID) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	i, err := c.milestoneIndex(id)
	if err != nil {
		return Config{}, err
	}

	next := c.clone()
	next.milestones = slices.Delete(next.milestones, i, i+1)
	return next, nil
}

// MarkMilestonePaid returns a copy with the milestone flagged as paid.
func (c Config) MarkMilestonePaid(id kernel.UUID) (Config, error) {
	return c.SetMilestoneStatus(id, MilestonePaid)
}

// MarkMilestonePending returns a copy with the milestone flagged as pending.
func (c Config) MarkMilestonePending(id kernel.UUID) (Config, error) {
	return c.SetMilestoneStatus(id, MilestonePending)
}

// SetMilestoneStatus returns a copy with the milestone status replaced.
// No history of previous statuses is kept.
func (c Config) SetMilestoneStatus(id kernel.UUID, status MilestoneStatus) (Config, error) {
	if err := status.Validate(); err != nil {
		return Config{}, err
	}
	return c.editMilestone(id, func(m Milestone) (Milestone, error) {
		return m.withStatus(status), nil
	})
}

func (c Config) editMilestone(id kernel.UUID, edit func(Milestone) (Milestone, error)) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	i, err := c.milestoneIndex(id)
	if err != nil {
		return Config{}, err
	}

	edited, err := edit(c.milestones[i])
	if err != nil {
		return Config{}, err
	}

	next := c.clone()
	next.milestones[i] = edited
	return next, nil
}

func (c Config) milestoneIndex(id kernel.UUID) (int, error) {
	for i, m := range c.milestones {
		if m.ID().IsEqual(id) {
			return i, nil
		}
	}
	return -1, errs.NewObjectNotFoundError("milestone", id.String())
}

// clone copies the receiver so that slice edits never leak into it.
func (c Config) clone() Config {
	next := c
	next.milestones = slices.Clone(c.milestones)
	return next
}

func (c *Config) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *Config) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Config) setSettings(s Settings) error {
	if err := errors.Join(
		validateBudget("purchase budget", s.PurchaseBudget),
		validateBudget("execution budget", s.ExecutionBudget),
		validateBudget("target profit", s.TargetProfit),
		validateMilestones(s.Milestones),
		validateCreditPeriod(s.CreditPeriodDays),
		s.ProjectType.Validate(),
	); err != nil {
		return err
	}

	c.purchaseBudget = s.PurchaseBudget
	c.executionBudget = s.ExecutionBudget
	c.targetProfit = s.TargetProfit
	c.milestones = slices.Clone(s.Milestones)
	c.creditPeriodDays = s.CreditPeriodDays
	c.projectType = s.ProjectType
	c.estimatedDeliveryDate = nil
	if s.EstimatedDeliveryDate != nil {
		d := *s.EstimatedDeliveryDate
		c.estimatedDeliveryDate = &d
	}
	c.notes = strings.TrimSpace(s.Notes)
	return nil
}

func validateBudget(name string, spec AmountSpec) error {
	if err := spec.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func validateMilestones(milestones []Milestone) error {
	seen := make(map[string]struct{}, len(milestones))
	for _, m := range milestones {
		if err := m.Validate(); err != nil {
			return err
		}
		key := m.ID().String()
		if _, dup := seen[key]; dup {
			return errs.NewValueIsInvalidErrorWithCause("milestone id", fmt.Errorf("%s appears more than once", key))
		}
		seen[key] = struct{}{}
	}
	return nil
}

func validateCreditPeriod(days int) error {
	if days < 0 {
		return errs.NewValueIsOutOfRangeError("credit period days", days, 0, "unbounded")
	}
	return nil
}
