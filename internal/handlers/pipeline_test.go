package handlers

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hy-wedding/rsvp-api/internal/models"
	"github.com/hy-wedding/rsvp-api/internal/store"
)

func setupPipeline(t *testing.T) (*RSVPHandler, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.RSVP{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return NewRSVPHandler(store.NewGormStore(db), nil, testConfig()), db
}

func TestPipelinePersistsSubmission(t *testing.T) {
	handler, db := setupPipeline(t)
	ctx := context.Background()

	body := validBody()
	body["allergy_flag"] = "1"
	body["allergy"] = []string{"えび", "そば"}
	body["guest_message"] = "おめでとうございます！"

	resp, err := handler.HandleSubmit(ctx, &SubmitRequest{Body: body})
	if err != nil {
		t.Fatalf("HandleSubmit returned error: %v", err)
	}

	var count int64
	db.Model(&models.RSVP{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 record in DB, got %d", count)
	}

	var rsvp models.RSVP
	if err := db.First(&rsvp, "id = ?", resp.Body.ID).Error; err != nil {
		t.Fatalf("failed to find stored record: %v", err)
	}
	if rsvp.Email != "taro@example.com" {
		t.Errorf("expected 'taro@example.com', got '%s'", rsvp.Email)
	}
	if rsvp.AllergyFlag != models.AllergyPresent {
		t.Errorf("expected allergy flag present, got %d", rsvp.AllergyFlag)
	}
	if len(rsvp.Allergy) != 2 {
		t.Errorf("expected 2 allergy items, got %d", len(rsvp.Allergy))
	}
	if rsvp.GuestMessage != "おめでとうございます！" {
		t.Errorf("unexpected guest message '%s'", rsvp.GuestMessage)
	}
}

func TestPipelineFlagsSecondSubmissionAsDuplicate(t *testing.T) {
	handler, db := setupPipeline(t)
	ctx := context.Background()

	first, err := handler.HandleSubmit(ctx, &SubmitRequest{Body: validBody()})
	if err != nil {
		t.Fatalf("first HandleSubmit returned error: %v", err)
	}
	if first.Body.DuplicateSubmission {
		t.Error("first submission should not be flagged as duplicate")
	}

	second, err := handler.HandleSubmit(ctx, &SubmitRequest{Body: validBody()})
	if err != nil {
		t.Fatalf("second HandleSubmit returned error: %v", err)
	}
	if !second.Body.DuplicateSubmission {
		t.Error("second submission with the same email should be flagged")
	}

	// The guard is advisory: both writes land.
	var count int64
	db.Model(&models.RSVP{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 records in DB, got %d", count)
	}
	if first.Body.ID == second.Body.ID {
		t.Errorf("expected distinct record ids, both were %s", first.Body.ID)
	}
}

func TestPipelineRejectsInvalidSubmissionWithoutWriting(t *testing.T) {
	handler, db := setupPipeline(t)

	body := validBody()
	body["email"] = "not-an-email"

	if _, err := handler.HandleSubmit(context.Background(), &SubmitRequest{Body: body}); err == nil {
		t.Fatal("expected a validation error")
	}

	var count int64
	db.Model(&models.RSVP{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no records after validation failure, got %d", count)
	}
}

func TestPipelineStats(t *testing.T) {
	handler, _ := setupPipeline(t)
	ctx := context.Background()

	bodies := []map[string]any{validBody(), validBody(), validBody()}
	bodies[1]["email"] = "hanako@example.com"
	bodies[1]["guest_side"] = "1"
	bodies[2]["email"] = "jiro@example.com"
	bodies[2]["status"] = "2"

	for i, body := range bodies {
		if _, err := handler.HandleSubmit(ctx, &SubmitRequest{Body: body}); err != nil {
			t.Fatalf("HandleSubmit %d returned error: %v", i, err)
		}
	}

	resp, err := handler.HandleStats(ctx, &struct{}{})
	if err != nil {
		t.Fatalf("HandleStats returned error: %v", err)
	}

	if resp.Body.Attending != 2 {
		t.Errorf("expected 2 attending, got %d", resp.Body.Attending)
	}
	if resp.Body.NotAttending != 1 {
		t.Errorf("expected 1 not attending, got %d", resp.Body.NotAttending)
	}
	if resp.Body.GroomSideAttending != 1 {
		t.Errorf("expected 1 groom-side attending, got %d", resp.Body.GroomSideAttending)
	}
	if resp.Body.BrideSideAttending != 1 {
		t.Errorf("expected 1 bride-side attending, got %d", resp.Body.BrideSideAttending)
	}
	if resp.Body.Total != 3 {
		t.Errorf("expected total 3, got %d", resp.Body.Total)
	}
}
