package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aydink/mentorlink/internal/app/models"
)

func TestRoleSetAllows(t *testing.T) {
	tests := []struct {
		name string
		set  RoleSet
		role models.Role
		want bool
	}{
		{name: "empty set admits any role", set: RoleSet{}, role: models.RoleStudent, want: true},
		{name: "nil set admits any role", set: nil, role: models.RolePlacementOfficer, want: true},
		{name: "listed role passes", set: RoleSet{models.RoleMentor}, role: models.RoleMentor, want: true},
		{name: "unlisted role fails", set: RoleSet{models.RoleMentor}, role: models.RoleStudent, want: false},
		{name: "multi-role set", set: RoleSet{models.RoleMentor, models.RolePlacementOfficer}, role: models.RolePlacementOfficer, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Allows(tt.role); got != tt.want {
				t.Errorf("Allows(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestActorRoleChecks(t *testing.T) {
	student := Actor{ID: 1, Role: models.RoleStudent}
	if !student.IsStudent() || student.IsMentor() || student.IsPlacementOfficer() {
		t.Error("student actor role checks are wrong")
	}

	mentor := Actor{ID: 2, Role: models.RoleMentor}
	if !mentor.IsMentor() || mentor.IsStudent() {
		t.Error("mentor actor role checks are wrong")
	}
}

func TestAttachAndFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := FromContext(c); ok {
		t.Fatal("FromContext should report absence before Attach")
	}

	want := Actor{ID: 7, Role: models.RoleMentor, FullName: "Jane Mentor"}
	Attach(c, want)

	got, ok := FromContext(c)
	if !ok {
		t.Fatal("FromContext should find the attached actor")
	}
	if got != want {
		t.Errorf("FromContext = %+v, want %+v", got, want)
	}
}
