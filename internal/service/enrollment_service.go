package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/store"
)

// maxAllocationAttempts bounds how many times a purchase is retried after
// losing a race with concurrent purchases against the same product.
const maxAllocationAttempts = 3

// EnrollmentResult describes the outcome of a successful purchase: the
// group the student was placed into, and whether that group was created
// by this purchase.
type EnrollmentResult struct {
	Group        *domain.Group
	GroupCreated bool
}

// EnrollmentService provides the purchase operation: it grants a student
// access to a product and places them into exactly one of the product's
// groups.
type EnrollmentService interface {
	// Purchase atomically grants the student access to the product and
	// assigns them to a group using first-fit allocation: the product's
	// groups are scanned in creation order and the first one with a free
	// seat wins; when every group is full, a new group is created and the
	// student becomes its first member.
	//
	// Returns ErrStudentNotFound or ErrProductNotFound if either party
	// does not exist, ErrWindowClosed if the product's start date has
	// passed, ErrAlreadyEnrolled if the student already holds access, and
	// ErrCapacityConflict if the allocation kept losing races with
	// concurrent purchases.
	Purchase(ctx context.Context, studentID, productID int64) (*EnrollmentResult, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	db           *sql.DB
	studentStore store.StudentStore
	productStore store.ProductStore
	groupStore   store.GroupStore
	logger       *slog.Logger

	// runInTx and now are indirections for unit tests; production code
	// always uses store.RunInTransaction and time.Now.
	runInTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
	now     func() time.Time
}

// NewEnrollmentService creates a new EnrollmentService.
// It returns an error if any of the required dependencies are nil.
func NewEnrollmentService(
	db *sql.DB,
	studentStore store.StudentStore,
	productStore store.ProductStore,
	groupStore store.GroupStore,
	logger *slog.Logger,
) (EnrollmentService, error) {
	if db == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "db cannot be nil",
		}
	}
	if studentStore == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "studentStore cannot be nil",
		}
	}
	if productStore == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "productStore cannot be nil",
		}
	}
	if groupStore == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "groupStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &enrollmentServiceImpl{
		db:           db,
		studentStore: studentStore,
		productStore: productStore,
		groupStore:   groupStore,
		logger:       logger.With("component", "enrollment_service"),
		runInTx:      store.RunInTransaction,
		now:          time.Now,
	}, nil
}

// Purchase implements EnrollmentService.Purchase. Each attempt runs in its
// own transaction that locks the product row, so concurrent purchases for
// the same product are serialized; attempts that still lose (serialization
// failure or a group-name collision from a racing creation) are retried up
// to maxAllocationAttempts before giving up with ErrCapacityConflict.
func (s *enrollmentServiceImpl) Purchase(
	ctx context.Context,
	studentID, productID int64,
) (*EnrollmentResult, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		result, err := s.attemptPurchase(ctx, studentID, productID)
		if err == nil {
			s.logger.Info("purchase completed",
				"student_id", studentID,
				"product_id", productID,
				"group_id", result.Group.ID,
				"group_created", result.GroupCreated,
				"attempt", attempt)
			return result, nil
		}

		if !isRetryableAllocationError(err) {
			return nil, err
		}

		lastErr = err
		s.logger.Warn("purchase attempt lost allocation race, retrying",
			"student_id", studentID,
			"product_id", productID,
			"attempt", attempt,
			"error", err)
	}

	s.logger.Error("purchase gave up after repeated allocation conflicts",
		"student_id", studentID,
		"product_id", productID,
		"attempts", maxAllocationAttempts,
		"error", lastErr)
	return nil, ErrCapacityConflict
}

// isRetryableAllocationError reports whether a failed attempt may succeed
// on a fresh transaction. Serialization failures and deadlocks qualify, as
// does a group-name collision, which means another transaction created the
// same product's next group first.
func isRetryableAllocationError(err error) bool {
	return store.IsConflictError(err) || errors.Is(err, store.ErrGroupNameExists)
}

// attemptPurchase runs one allocation attempt in a single transaction.
func (s *enrollmentServiceImpl) attemptPurchase(
	ctx context.Context,
	studentID, productID int64,
) (*EnrollmentResult, error) {
	var result *EnrollmentResult

	err := s.runInTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStudents := s.studentStore.WithTx(tx)
		txProducts := s.productStore.WithTx(tx)
		txGroups := s.groupStore.WithTx(tx)

		if _, err := txStudents.GetByID(ctx, studentID); err != nil {
			if errors.Is(err, store.ErrStudentNotFound) {
				return ErrStudentNotFound
			}
			return NewEnrollmentError("purchase", "failed to load student", err)
		}

		// Locking the product row serializes every allocation decision
		// for this product against concurrent purchases.
		product, err := txProducts.GetForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				return ErrProductNotFound
			}
			return NewEnrollmentError("purchase", "failed to lock product", err)
		}

		if !product.IsPurchasable(s.now()) {
			return ErrWindowClosed
		}

		hasAccess, err := txStudents.HasAccess(ctx, studentID, productID)
		if err != nil {
			return NewEnrollmentError("purchase", "failed to check existing access", err)
		}
		if hasAccess {
			return ErrAlreadyEnrolled
		}

		group, created, err := s.allocateGroup(ctx, txGroups, product)
		if err != nil {
			return err
		}

		if err := txGroups.AddMember(ctx, group.ID, productID, studentID); err != nil {
			if errors.Is(err, store.ErrMembershipExists) {
				return ErrAlreadyEnrolled
			}
			return NewEnrollmentError("purchase", "failed to record group membership", err)
		}

		if err := txStudents.GrantAccess(ctx, studentID, productID); err != nil {
			if errors.Is(err, store.ErrAccessExists) {
				return ErrAlreadyEnrolled
			}
			return NewEnrollmentError("purchase", "failed to grant product access", err)
		}

		result = &EnrollmentResult{Group: group, GroupCreated: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// allocateGroup picks the group the student joins: the first group in
// creation order with a free seat, or a freshly created group when every
// existing one is full. The new group's name is derived from the product
// name and the group's 1-based position.
func (s *enrollmentServiceImpl) allocateGroup(
	ctx context.Context,
	txGroups store.GroupStore,
	product *domain.Product,
) (*domain.Group, bool, error) {
	occupancies, err := txGroups.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, false, NewEnrollmentError("purchase", "failed to list groups", err)
	}

	for _, occ := range occupancies {
		if occ.Members < product.MaxGroupSize {
			group := occ.Group
			return &group, false, nil
		}
	}

	name := domain.GroupName(product.Name, len(occupancies)+1)
	group, err := domain.NewGroup(product.ID, name)
	if err != nil {
		return nil, false, NewEnrollmentError("purchase", "failed to build new group", err)
	}

	if err := txGroups.Create(ctx, group); err != nil {
		if errors.Is(err, store.ErrGroupNameExists) {
			// Another transaction created this product's next group
			// first; the caller retries on a fresh snapshot.
			return nil, false, err
		}
		return nil, false, NewEnrollmentError("purchase", "failed to create group", err)
	}

	return group, true, nil
}
