package repository

import (
	"context"

	"gorm.io/gorm"

	"property-portal-backend/internal/logger"
)

// Op is a single document write queued into a Batch
type Op interface {
	apply(tx *gorm.DB) error
}

// SaveOp inserts or fully replaces a record (last-writer-wins)
type SaveOp struct {
	Record interface{}
}

func (op SaveOp) apply(tx *gorm.DB) error {
	return tx.Save(op.Record).Error
}

// CreateOp inserts a new record and fails if it already exists
type CreateOp struct {
	Record interface{}
}

func (op CreateOp) apply(tx *gorm.DB) error {
	return tx.Create(op.Record).Error
}

// UpdateOp applies a partial column update to a record identified by Model
type UpdateOp struct {
	Model   interface{}
	Updates map[string]interface{}
}

func (op UpdateOp) apply(tx *gorm.DB) error {
	return tx.Model(op.Model).Updates(op.Updates).Error
}

// DeleteOp removes a record. Model must carry its primary key(s).
type DeleteOp struct {
	Model interface{}
}

func (op DeleteOp) apply(tx *gorm.DB) error {
	return tx.Delete(op.Model).Error
}

// Batch accumulates the writes of one guarded mutation: the primary write,
// the reciprocal reference updates produced by the integrity guard, and the
// audit entry. It is committed exactly once, all-or-nothing; guard failures
// happen before the batch is committed so no partial state is ever written.
type Batch struct {
	ops []Op
}

// NewBatch creates an empty batch
func NewBatch() *Batch {
	return &Batch{}
}

// Add queues an op onto the batch
func (b *Batch) Add(ops ...Op) *Batch {
	b.ops = append(b.ops, ops...)
	return b
}

// Save queues an insert-or-replace of the record
func (b *Batch) Save(record interface{}) *Batch {
	return b.Add(SaveOp{Record: record})
}

// Create queues an insert of the record
func (b *Batch) Create(record interface{}) *Batch {
	return b.Add(CreateOp{Record: record})
}

// Update queues a partial update of the record
func (b *Batch) Update(model interface{}, updates map[string]interface{}) *Batch {
	return b.Add(UpdateOp{Model: model, Updates: updates})
}

// Delete queues a delete of the record
func (b *Batch) Delete(model interface{}) *Batch {
	return b.Add(DeleteOp{Model: model})
}

// Len returns the number of queued ops
func (b *Batch) Len() int {
	return len(b.ops)
}

// Ops returns the queued ops, primarily for assertions in tests
func (b *Batch) Ops() []Op {
	return b.ops
}

// BatchCommitter commits a batch as a single atomic unit
type BatchCommitter interface {
	Commit(ctx context.Context, batch *Batch) error
}

// GormBatchCommitter commits batches inside one database transaction
type GormBatchCommitter struct {
	db *gorm.DB
}

// NewBatchCommitter creates a new transactional batch committer
func NewBatchCommitter(db *gorm.DB) *GormBatchCommitter {
	return &GormBatchCommitter{db: db}
}

// Commit applies every op of the batch inside one transaction. Any op error
// rolls back the whole batch. An empty batch is a no-op.
func (c *GormBatchCommitter) Commit(ctx context.Context, batch *Batch) error {
	if batch == nil || batch.Len() == 0 {
		return nil
	}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range batch.ops {
			if err := op.apply(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).Errorf("Batch of %d ops rolled back", batch.Len())
	}
	return err
}
