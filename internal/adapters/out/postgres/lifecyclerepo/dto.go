// Package lifecyclerepo persists lifecycle configurations and their payment
// milestones. A configuration is stored as one row in lifecycle_configs keyed
// by the order id; milestones live in lifecycle_milestones with a position
// column that preserves their display order.
package lifecyclerepo

import (
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConfigDTO represents the database structure for a lifecycle configuration.
type ConfigDTO struct {
	OrderID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseBudgetKind    string          `gorm:"type:varchar(16);not null"`
	PurchaseBudgetValue   decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	ExecutionBudgetKind   string          `gorm:"type:varchar(16);not null"`
	ExecutionBudgetValue  decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	TargetProfitKind      string          `gorm:"type:varchar(16);not null"`
	TargetProfitValue     decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	CreditPeriodDays      int             `gorm:"not null;default:0"`
	ProjectType           string          `gorm:"type:varchar(32);not null;default:''"`
	EstimatedDeliveryDate *time.Time      `gorm:"type:date"`
	Notes                 string          `gorm:"type:text;not null;default:''"`
	Status                string          `gorm:"type:varchar(16);not null;index"`
	Milestones            []MilestoneDTO  `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
	UpdatedAt             time.Time
}

// TableName specifies the database table name for lifecycle configurations.
func (ConfigDTO) TableName() string {
	return "lifecycle_configs"
}

// MilestoneDTO represents one payment milestone row. Milestone ids are only
// unique within their order, so the key is (order_id, id).
type MilestoneDTO struct {
	OrderID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position     int             `gorm:"not null"`
	Name         string          `gorm:"type:varchar(255);not null"`
	AmountKind   string          `gorm:"type:varchar(16);not null"`
	AmountValue  decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	DueCondition string          `gorm:"type:text;not null;default:''"`
	Status       string          `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for milestones.
func (MilestoneDTO) TableName() string {
	return "lifecycle_milestones"
}

// fromDomain converts a configuration to its database representation.
func fromDomain(cfg lifecycle.Config) ConfigDTO {
	orderID := cfg.OrderID().Bytes()

	milestones := make([]MilestoneDTO, 0, len(cfg.Milestones()))
	for i, m := range cfg.Milestones() {
		milestones = append(milestones, MilestoneDTO{
			ID:           m.ID().Bytes(),
			OrderID:      orderID,
			Position:     i,
			Name:         m.Name(),
			AmountKind:   m.Amount().Kind().String(),
			AmountValue:  m.Amount().Value(),
			DueCondition: m.DueCondition(),
			Status:       m.Status().String(),
		})
	}

	return ConfigDTO{
		OrderID:               orderID,
		PurchaseBudgetKind:    cfg.PurchaseBudget().Kind().String(),
		PurchaseBudgetValue:   cfg.PurchaseBudget().Value(),
		ExecutionBudgetKind:   cfg.ExecutionBudget().Kind().String(),
		ExecutionBudgetValue:  cfg.ExecutionBudget().Value(),
		TargetProfitKind:      cfg.TargetProfit().Kind().String(),
		TargetProfitValue:     cfg.TargetProfit().Value(),
		CreditPeriodDays:      cfg.CreditPeriodDays(),
		ProjectType:           string(cfg.ProjectType()),
		EstimatedDeliveryDate: cfg.EstimatedDeliveryDate(),
		Notes:                 cfg.Notes(),
		Status:                cfg.Status().String(),
		Milestones:            milestones,
	}
}

// toDomain rebuilds a configuration from its row and milestone rows.
// Milestones are expected sorted by position.
func toDomain(dto ConfigDTO) (lifecycle.Config, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return lifecycle.Config{}, err
	}

	purchase, err := lifecycle.NewAmountSpec(dto.PurchaseBudgetKind, dto.PurchaseBudgetValue)
	if err != nil {
		return lifecycle.Config{}, err
	}
	execution, err := lifecycle.NewAmountSpec(dto.ExecutionBudgetKind, dto.ExecutionBudgetValue)
	if err != nil {
		return lifecycle.Config{}, err
	}
	profit, err := lifecycle.NewAmountSpec(dto.TargetProfitKind, dto.TargetProfitValue)
	if err != nil {
		return lifecycle.Config{}, err
	}

	projectType, err := lifecycle.ParseProjectType(dto.ProjectType)
	if err != nil {
		return lifecycle.Config{}, err
	}

	status, err := lifecycle.ParseStatus(dto.Status)
	if err != nil {
		return lifecycle.Config{}, err
	}

	milestones := make([]lifecycle.Milestone, 0, len(dto.Milestones))
	for _, mdto := range dto.Milestones {
		m, err := milestoneToDomain(mdto)
		if err != nil {
			return lifecycle.Config{}, err
		}
		milestones = append(milestones, m)
	}

	return lifecycle.RestoreConfig(orderID, lifecycle.Settings{
		PurchaseBudget:        purchase,
		ExecutionBudget:       execution,
		TargetProfit:          profit,
		Milestones:            milestones,
		CreditPeriodDays:      dto.CreditPeriodDays,
		ProjectType:           projectType,
		EstimatedDeliveryDate: dto.EstimatedDeliveryDate,
		Notes:                 dto.Notes,
	}, status)
}

func milestoneToDomain(dto MilestoneDTO) (lifecycle.Milestone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return lifecycle.Milestone{}, err
	}

	amount, err := lifecycle.NewAmountSpec(dto.AmountKind, dto.AmountValue)
	if err != nil {
		return lifecycle.Milestone{}, err
	}

	status, err := lifecycle.ParseMilestoneStatus(dto.Status)
	if err != nil {
		return lifecycle.Milestone{}, err
	}

	return lifecycle.RestoreMilestone(id, dto.Name, amount, dto.DueCondition, status)
}
