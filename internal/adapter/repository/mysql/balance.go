package mysql

import (
	"context"

	balanceDomain "workforce-backend/internal/domain/balance"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BalanceRepository struct{ db *gorm.DB }

func NewBalanceRepository(db *gorm.DB) *BalanceRepository { return &BalanceRepository{db: db} }

func (r *BalanceRepository) GetByEmployeeID(ctx context.Context, employeeID uint64) (*balanceDomain.Record, error) {
	var out balanceDomain.Record
	res := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&out)
	return &out, res.Error
}

func (r *BalanceRepository) GetByEmployeeIDForUpdate(ctx context.Context, employeeID uint64) (*balanceDomain.Record, error) {
	var out balanceDomain.Record
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		First(&out)
	return &out, res.Error
}

// CreateIfAbsent relies on the unique employee_id index: a losing concurrent
// insert becomes a no-op instead of a constraint error.
func (r *BalanceRepository) CreateIfAbsent(ctx context.Context, rec *balanceDomain.Record) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "employee_id"}}, DoNothing: true}).
		Create(rec).Error
}

func (r *BalanceRepository) Save(ctx context.Context, rec *balanceDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *BalanceRepository) Upsert(ctx context.Context, rec *balanceDomain.Record) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"annual_hours", "sick_hours", "long_service_hours", "updated_at"}),
		}).
		Create(rec).Error
}

func (r *BalanceRepository) ListAll(ctx context.Context) ([]balanceDomain.Record, error) {
	var out []balanceDomain.Record
	res := r.db.WithContext(ctx).Order("employee_id ASC").Find(&out)
	return out, res.Error
}
