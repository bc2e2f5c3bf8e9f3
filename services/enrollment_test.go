package services

import (
	"errors"
	"testing"

	"fitforge/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Batch{},
		&models.Chapter{},
		&models.Enrollment{},
		&models.Coupon{},
	)
	if err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

func seedUserAndBatch(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	user := models.User{FullName: "Asha Rao", Email: "asha@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	batch := models.Batch{Title: "12 Week Strength", Price: 2999, IsActive: true}
	if err := db.Create(&batch).Error; err != nil {
		t.Fatalf("seeding batch: %v", err)
	}
	return user.ID, batch.ID
}

func countEnrollments(t *testing.T, db *gorm.DB, userID, batchID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND batch_id = ?", userID, batchID).
		Count(&count).Error; err != nil {
		t.Fatalf("counting enrollments: %v", err)
	}
	return count
}

func TestInitiateEnrollmentIdempotent(t *testing.T) {
	db := setupTestDB(t)
	userID, batchID := seedUserAndBatch(t, db)

	first, err := InitiateEnrollment(db, userID, batchID, "", 2999, 0, 2999)
	if err != nil {
		t.Fatalf("first initiate: %v", err)
	}
	if first.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("status = %q, want PENDING", first.PaymentStatus)
	}

	// Abandoned checkout retried with a coupon this time
	second, err := InitiateEnrollment(db, userID, batchID, "LAUNCH20", 2999, 600, 2399)
	if err != nil {
		t.Fatalf("second initiate: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("retry created a new row: first ID %d, second ID %d", first.ID, second.ID)
	}
	if second.CouponCode != "LAUNCH20" || second.FinalAmount != 2399 {
		t.Errorf("retry did not refresh amounts: coupon=%q final=%d", second.CouponCode, second.FinalAmount)
	}

	if count := countEnrollments(t, db, userID, batchID); count != 1 {
		t.Errorf("enrollment rows = %d, want 1", count)
	}
}

func TestInitiateEnrollmentRefusesPaid(t *testing.T) {
	db := setupTestDB(t)
	userID, batchID := seedUserAndBatch(t, db)

	enrollment, err := InitiateEnrollment(db, userID, batchID, "", 2999, 0, 2999)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}
	if _, err := MarkEnrollmentPaid(db, enrollment.ID, "pay_abc123"); err != nil {
		t.Fatalf("mark paid: %v", err)
	}

	if _, err := InitiateEnrollment(db, userID, batchID, "", 2999, 0, 2999); !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("error = %v, want ErrAlreadyEnrolled", err)
	}

	// The paid row must be untouched
	var reloaded models.Enrollment
	if err := db.Where("id = ?", enrollment.ID).First(&reloaded).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.PaymentStatus != models.PaymentStatusPaid || reloaded.PaymentRef != "pay_abc123" {
		t.Errorf("paid row mutated: status=%q ref=%q", reloaded.PaymentStatus, reloaded.PaymentRef)
	}
}

func TestMarkEnrollmentPaid(t *testing.T) {
	db := setupTestDB(t)
	userID, batchID := seedUserAndBatch(t, db)

	coupon := models.Coupon{Code: "LAUNCH20", DiscountType: models.DiscountTypePercentage, DiscountValue: 20, IsActive: true}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seeding coupon: %v", err)
	}

	enrollment, err := InitiateEnrollment(db, userID, batchID, "LAUNCH20", 2999, 600, 2399)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}

	paid, err := MarkEnrollmentPaid(db, enrollment.ID, "pay_xyz789")
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("status = %q, want PAID", paid.PaymentStatus)
	}
	if paid.EnrolledAt == nil {
		t.Error("enrolled_at not stamped")
	}
	if paid.PaymentRef != "pay_xyz789" {
		t.Errorf("payment_ref = %q, want pay_xyz789", paid.PaymentRef)
	}

	// The applied coupon is consumed on the paid transition
	var reloaded models.Coupon
	if err := db.Where("code = ?", "LAUNCH20").First(&reloaded).Error; err != nil {
		t.Fatalf("reload coupon: %v", err)
	}
	if reloaded.UsageCount != 1 {
		t.Errorf("coupon usage_count = %d, want 1", reloaded.UsageCount)
	}

	if !IsUserEnrolled(db, userID, batchID) {
		t.Error("IsUserEnrolled = false after paid transition")
	}
}

func TestMarkEnrollmentFailedThenRetry(t *testing.T) {
	db := setupTestDB(t)
	userID, batchID := seedUserAndBatch(t, db)

	enrollment, err := InitiateEnrollment(db, userID, batchID, "", 2999, 0, 2999)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}

	failed, err := MarkEnrollmentFailed(db, enrollment.ID)
	if err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if failed.PaymentStatus != models.PaymentStatusFailed {
		t.Errorf("status = %q, want FAILED", failed.PaymentStatus)
	}
	if IsUserEnrolled(db, userID, batchID) {
		t.Error("IsUserEnrolled = true for failed payment")
	}

	// Retry re-enters PENDING on the same row
	retried, err := InitiateEnrollment(db, userID, batchID, "", 2999, 0, 2999)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if retried.ID != enrollment.ID {
		t.Errorf("retry created a new row: %d vs %d", retried.ID, enrollment.ID)
	}
	if retried.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("status = %q, want PENDING", retried.PaymentStatus)
	}
}

func TestMarkEnrollmentNotFound(t *testing.T) {
	db := setupTestDB(t)

	if _, err := MarkEnrollmentPaid(db, 999, "pay_nope"); !errors.Is(err, ErrEnrollmentNotFound) {
		t.Errorf("MarkEnrollmentPaid error = %v, want ErrEnrollmentNotFound", err)
	}
	if _, err := MarkEnrollmentFailed(db, 999); !errors.Is(err, ErrEnrollmentNotFound) {
		t.Errorf("MarkEnrollmentFailed error = %v, want ErrEnrollmentNotFound", err)
	}
	if err := RevokeEnrollment(db, 999); !errors.Is(err, ErrEnrollmentNotFound) {
		t.Errorf("RevokeEnrollment error = %v, want ErrEnrollmentNotFound", err)
	}
}

func TestGrantAndRevokeDriveEntitlement(t *testing.T) {
	db := setupTestDB(t)
	userID, batchID := seedUserAndBatch(t, db)

	granted, err := GrantEnrollment(db, userID, batchID)
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if granted.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("status = %q, want PAID", granted.PaymentStatus)
	}
	if granted.PaymentRef == "" {
		t.Error("granted enrollment has empty payment_ref")
	}

	if got := ResolveEntitlement(false, IsUserEnrolled(db, userID, batchID), "Week 6 Program"); got != EntitlementUnlocked {
		t.Errorf("entitlement after grant = %q, want UNLOCKED", got)
	}

	if err := RevokeEnrollment(db, granted.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	if got := ResolveEntitlement(false, IsUserEnrolled(db, userID, batchID), "Week 6 Program"); got != EntitlementLocked {
		t.Errorf("entitlement after revoke = %q, want LOCKED", got)
	}
	// Free chapters survive revocation
	if got := ResolveEntitlement(false, IsUserEnrolled(db, userID, batchID), "Introduction"); got != EntitlementUnlocked {
		t.Errorf("free chapter after revoke = %q, want UNLOCKED", got)
	}

	if count := countEnrollments(t, db, userID, batchID); count != 0 {
		t.Errorf("enrollment rows after revoke = %d, want 0", count)
	}
}

func TestGrantEnrollmentOverPending(t *testing.T) {
	db := setupTestDB(t)
	userID, batchID := seedUserAndBatch(t, db)

	pending, err := InitiateEnrollment(db, userID, batchID, "", 2999, 0, 2999)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}

	granted, err := GrantEnrollment(db, userID, batchID)
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if granted.ID != pending.ID {
		t.Errorf("grant created a new row: %d vs %d", granted.ID, pending.ID)
	}
	if granted.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("status = %q, want PAID", granted.PaymentStatus)
	}
}

func TestIsUserEnrolledAnonymous(t *testing.T) {
	db := setupTestDB(t)
	_, batchID := seedUserAndBatch(t, db)

	if IsUserEnrolled(db, 0, batchID) {
		t.Error("anonymous user reads as enrolled")
	}
}
