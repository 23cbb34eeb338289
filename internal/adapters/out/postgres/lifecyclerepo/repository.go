package lifecyclerepo

import (
	"context"
	"errors"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLifecycleConfigRepository implements LifecycleConfigRepository using GORM.
type GormLifecycleConfigRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLifecycleConfigRepository creates a new GORM lifecycle configuration repository.
func NewGormLifecycleConfigRepository(db *gorm.DB, tracker aggregateTracker) *GormLifecycleConfigRepository {
	return &GormLifecycleConfigRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves the first configuration of an order together with its milestones.
func (r *GormLifecycleConfigRepository) Add(ctx context.Context, cfg lifecycle.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dto := fromDomain(cfg)
	db := r.db.WithContext(ctx)

	// Milestone rows are inserted explicitly; association saving would upsert them.
	if err := db.Omit("Milestones").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("lifecycle config", err)
		}
		return err
	}
	if err := insertMilestones(db, dto.Milestones); err != nil {
		return err
	}

	r.tracker.TrackAggregate(cfg.OrderID(), cfg)
	return nil
}

// Update overwrites the configuration row and replaces its milestone rows.
// Should run inside a unit of work so the replacement is atomic.
func (r *GormLifecycleConfigRepository) Update(ctx context.Context, cfg lifecycle.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dto := fromDomain(cfg)
	db := r.db.WithContext(ctx)

	// Select("*") so zero values such as a cleared delivery date are written.
	result := db.Model(&ConfigDTO{}).
		Where("order_id = ?", dto.OrderID).
		Select("*").
		Omit("OrderID", "Milestones").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("lifecycle config", cfg.OrderID().String(), gorm.ErrRecordNotFound)
	}

	if err := db.Where("order_id = ?", dto.OrderID).Delete(&MilestoneDTO{}).Error; err != nil {
		return err
	}
	if err := insertMilestones(db, dto.Milestones); err != nil {
		return err
	}

	r.tracker.TrackAggregate(cfg.OrderID(), cfg)
	return nil
}

// Get retrieves the configuration of an order with milestones in display order.
func (r *GormLifecycleConfigRepository) Get(ctx context.Context, orderID kernel.UUID) (lifecycle.Config, error) {
	if err := orderID.Validate(); err != nil {
		return lifecycle.Config{}, err
	}

	var dto ConfigDTO
	err := r.db.WithContext(ctx).
		Preload("Milestones", orderByPosition).
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lifecycle.Config{}, errs.NewObjectNotFoundError("lifecycle config", orderID.String())
		}
		return lifecycle.Config{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored configuration.
func (r *GormLifecycleConfigRepository) GetAll(ctx context.Context) ([]lifecycle.Config, error) {
	var dtos []ConfigDTO
	err := r.db.WithContext(ctx).
		Preload("Milestones", orderByPosition).
		Order("order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	configs := make([]lifecycle.Config, 0, len(dtos))
	for _, dto := range dtos {
		cfg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, nil
}

func insertMilestones(db *gorm.DB, milestones []MilestoneDTO) error {
	if len(milestones) == 0 {
		return nil
	}
	if err := db.Create(&milestones).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("milestone id", err)
		}
		return err
	}
	return nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
