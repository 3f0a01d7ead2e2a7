package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// fullStudent returns a student with every checklist field filled.
func fullStudent() *User {
	dob := time.Date(2002, 5, 14, 0, 0, 0, 0, time.UTC)
	cgpa := 8.4
	return &User{
		Name:             "Aryan Kumar",
		Email:            "aryan@university.edu",
		Role:             RoleStudent,
		Phone:            strPtr("+91 9876543210"),
		DateOfBirth:      &dob,
		Department:       strPtr("Computer Science"),
		ProfileImage:     strPtr("/uploads/profiles/a.png"),
		Year:             intPtr(3),
		Semester:         intPtr(6),
		EnrollmentNumber: strPtr("CS2021045"),
		CGPA:             &cgpa,
		Skills:           []string{"Go", "React"},
		Resume:           strPtr("/uploads/profiles/resume.pdf"),
		Bio:              strPtr("Backend enthusiast"),
		PortfolioURL:     strPtr("https://aryan.dev"),
		LinkedIn:         strPtr("https://linkedin.com/in/aryan"),
		GitHub:           strPtr("https://github.com/aryan"),
		Address:          strPtr("12 MG Road"),
		City:             strPtr("Bengaluru"),
		State:            strPtr("Karnataka"),
		Pincode:          strPtr("560001"),
	}
}

func TestCalculateProfileCompletion_FullStudent(t *testing.T) {
	assert.Equal(t, 100, fullStudent().CalculateProfileCompletion())
}

func TestCalculateProfileCompletion_EmptyUser(t *testing.T) {
	u := &User{Role: RoleStudent}
	assert.Equal(t, 0, u.CalculateProfileCompletion())
}

func TestCalculateProfileCompletion_NewStudent(t *testing.T) {
	// Name and email only: 2 of 20 fields
	u := &User{Name: "Rahul", Email: "rahul@campus.edu", Role: RoleStudent}
	assert.Equal(t, 10, u.CalculateProfileCompletion())
}

func TestCalculateProfileCompletion_HalfStudent(t *testing.T) {
	dob := time.Date(2003, 1, 2, 0, 0, 0, 0, time.UTC)
	u := &User{
		Name:         "Rahul",
		Email:        "rahul@campus.edu",
		Role:         RoleStudent,
		Phone:        strPtr("123"),
		DateOfBirth:  &dob,
		Department:   strPtr("CS"),
		ProfileImage: strPtr("/uploads/profiles/x.png"),
		Year:         intPtr(2),
		Semester:     intPtr(4),
		Skills:       []string{"Go"},
		Bio:          strPtr("hi"),
	}
	// 10 of 20 fields
	assert.Equal(t, 50, u.CalculateProfileCompletion())
}

func TestCalculateProfileCompletion_RoundsHalfUp(t *testing.T) {
	// 1 of 20 is exactly 5
	u := &User{Name: "x", Role: RoleStudent}
	assert.Equal(t, 5, u.CalculateProfileCompletion())

	// 3 of 16 is 18.75, rounds to 19
	u = &User{
		Name:  "x",
		Email: "x@y.z",
		Role:  RoleFaculty,
		Phone: strPtr("1"),
	}
	assert.Equal(t, 19, u.CalculateProfileCompletion())
}

func TestCalculateProfileCompletion_RoleChangesChecklist(t *testing.T) {
	u := fullStudent()
	asStudent := u.CalculateProfileCompletion()

	// Same field values scored against the faculty checklist: the student
	// fields no longer count, only the common six plus linkedin are filled.
	u.Role = RoleFaculty
	asFaculty := u.CalculateProfileCompletion()

	assert.Equal(t, 100, asStudent)
	assert.NotEqual(t, asStudent, asFaculty)
	// 7 of 16
	assert.Equal(t, 44, asFaculty)
}

func TestCalculateProfileCompletion_Faculty(t *testing.T) {
	dob := time.Date(1980, 3, 9, 0, 0, 0, 0, time.UTC)
	u := &User{
		Name:              "Dr. Meera Sharma",
		Email:             "meera@university.edu",
		Role:              RoleFaculty,
		Phone:             strPtr("+91 9000000000"),
		DateOfBirth:       &dob,
		Department:        strPtr("Computer Science"),
		ProfileImage:      strPtr("/uploads/profiles/m.png"),
		Designation:       strPtr("Associate Professor"),
		Qualification:     strPtr("PhD"),
		Experience:        intPtr(12),
		EmployeeID:        strPtr("FAC-042"),
		ResearchInterests: []string{"Distributed systems"},
		Publications:      []string{"Consensus at scale, 2019"},
		Specialization:    strPtr("Systems"),
		OfficeRoom:        strPtr("B-214"),
		OfficeHours:       strPtr("Tue 14:00-16:00"),
		LinkedIn:          strPtr("https://linkedin.com/in/meera"),
	}
	assert.Equal(t, 100, u.CalculateProfileCompletion())
}

func TestCalculateProfileCompletion_AdminUsesCommonFields(t *testing.T) {
	dob := time.Date(1975, 7, 1, 0, 0, 0, 0, time.UTC)
	u := &User{
		Name:         "Portal Admin",
		Email:        "admin@campus.edu",
		Role:         RoleAdmin,
		Phone:        strPtr("1"),
		DateOfBirth:  &dob,
		Department:   strPtr("Administration"),
		ProfileImage: strPtr("/uploads/profiles/admin.png"),
	}
	assert.Equal(t, 100, u.CalculateProfileCompletion())

	// Student-only fields do not move the admin score
	u.Skills = []string{"Go"}
	u.CGPA = new(float64)
	assert.Equal(t, 100, u.CalculateProfileCompletion())

	u.ProfileImage = nil
	// 5 of 6 is 83.33
	assert.Equal(t, 83, u.CalculateProfileCompletion())
}

func TestCalculateProfileCompletion_EmptyStringsNotFilled(t *testing.T) {
	u := &User{
		Name:       "x",
		Email:      "x@y.z",
		Role:       RoleStudent,
		Phone:      strPtr(""),
		Department: strPtr(""),
		Skills:     []string{},
	}
	// Empty strings and empty lists count as unfilled: still 2 of 20
	assert.Equal(t, 10, u.CalculateProfileCompletion())
}
