package jwt

import (
	"errors"
	"testing"

	"github.com/SiddharthChaturvedii/FoodView/domain"
	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	subjectID := uuid.NewString()
	token := service.GenerateToken(subjectID, domain.RoleUser)
	if token == "" {
		t.Fatal("GenerateToken() returned an empty token")
	}

	gotID, gotRole, err := service.GetSubjectByToken(token)
	if err != nil {
		t.Fatalf("GetSubjectByToken() error = %v", err)
	}
	if gotID != subjectID {
		t.Errorf("subject id = %q, want %q", gotID, subjectID)
	}
	if gotRole != domain.RoleUser {
		t.Errorf("role = %q, want %q", gotRole, domain.RoleUser)
	}
}

func TestGetSubjectByTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService()

	if _, _, err := service.GetSubjectByToken("not.a.token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("error = %v, want %v", err, domain.ErrTokenInvalid)
	}
}
