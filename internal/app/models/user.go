package models

import (
	"math"
	"time"
)

// User defines the user model based on the 'users' table.
// Profile columns beyond the identity block are optional and role-specific;
// pointers and slices stay nil until the user fills them in.
type User struct {
	ID                int64      `json:"id" db:"id" example:"1"`
	Name              string     `json:"name" db:"name" example:"Aryan Kumar"`
	Email             string     `json:"email" db:"email" example:"aryan@university.edu"`
	Password          string     `json:"-" db:"password"`
	Role              RoleType   `json:"role" db:"role" example:"STUDENT"`
	Phone             *string    `json:"phone,omitempty" db:"phone"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Department        *string    `json:"department,omitempty" db:"department"`
	ProfileImage      *string    `json:"profileImage,omitempty" db:"profile_image"`
	ProfileCompletion int        `json:"profileCompletion" db:"profile_completion" example:"45"`

	// Student fields
	Year             *int     `json:"year,omitempty" db:"year"`
	Semester         *int     `json:"semester,omitempty" db:"semester"`
	EnrollmentNumber *string  `json:"enrollmentNumber,omitempty" db:"enrollment_number"`
	CGPA             *float64 `json:"cgpa,omitempty" db:"cgpa"`
	Skills           []string `json:"skills,omitempty" db:"skills"`
	Resume           *string  `json:"resume,omitempty" db:"resume"`
	Bio              *string  `json:"bio,omitempty" db:"bio"`
	PortfolioURL     *string  `json:"portfolioUrl,omitempty" db:"portfolio_url"`
	LinkedIn         *string  `json:"linkedin,omitempty" db:"linkedin"`
	GitHub           *string  `json:"github,omitempty" db:"github"`
	Address          *string  `json:"address,omitempty" db:"address"`
	City             *string  `json:"city,omitempty" db:"city"`
	State            *string  `json:"state,omitempty" db:"state"`
	Pincode          *string  `json:"pincode,omitempty" db:"pincode"`

	// Faculty fields
	Designation       *string  `json:"designation,omitempty" db:"designation"`
	Qualification     *string  `json:"qualification,omitempty" db:"qualification"`
	Experience        *int     `json:"experience,omitempty" db:"experience"`
	EmployeeID        *string  `json:"employeeId,omitempty" db:"employee_id"`
	ResearchInterests []string `json:"researchInterests,omitempty" db:"research_interests"`
	Publications      []string `json:"publications,omitempty" db:"publications"`
	Specialization    *string  `json:"specialization,omitempty" db:"specialization"`
	OfficeRoom        *string  `json:"officeRoom,omitempty" db:"office_room"`
	OfficeHours       *string  `json:"officeHours,omitempty" db:"office_hours"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// profileField is one entry of a role's completion checklist.
type profileField struct {
	name   string
	filled func(*User) bool
}

func stringFilled(get func(*User) *string) func(*User) bool {
	return func(u *User) bool {
		v := get(u)
		return v != nil && *v != ""
	}
}

func listFilled(get func(*User) []string) func(*User) bool {
	return func(u *User) bool {
		return len(get(u)) > 0
	}
}

// Checklist fields common to every role.
var commonChecklist = []profileField{
	{"name", func(u *User) bool { return u.Name != "" }},
	{"email", func(u *User) bool { return u.Email != "" }},
	{"phone", stringFilled(func(u *User) *string { return u.Phone })},
	{"dateOfBirth", func(u *User) bool { return u.DateOfBirth != nil }},
	{"department", stringFilled(func(u *User) *string { return u.Department })},
	{"profileImage", stringFilled(func(u *User) *string { return u.ProfileImage })},
}

var studentChecklist = append(append([]profileField{}, commonChecklist...), []profileField{
	{"year", func(u *User) bool { return u.Year != nil }},
	{"semester", func(u *User) bool { return u.Semester != nil }},
	{"enrollmentNumber", stringFilled(func(u *User) *string { return u.EnrollmentNumber })},
	{"cgpa", func(u *User) bool { return u.CGPA != nil }},
	{"skills", listFilled(func(u *User) []string { return u.Skills })},
	{"resume", stringFilled(func(u *User) *string { return u.Resume })},
	{"bio", stringFilled(func(u *User) *string { return u.Bio })},
	{"portfolioUrl", stringFilled(func(u *User) *string { return u.PortfolioURL })},
	{"linkedin", stringFilled(func(u *User) *string { return u.LinkedIn })},
	{"github", stringFilled(func(u *User) *string { return u.GitHub })},
	{"address", stringFilled(func(u *User) *string { return u.Address })},
	{"city", stringFilled(func(u *User) *string { return u.City })},
	{"state", stringFilled(func(u *User) *string { return u.State })},
	{"pincode", stringFilled(func(u *User) *string { return u.Pincode })},
}...)

var facultyChecklist = append(append([]profileField{}, commonChecklist...), []profileField{
	{"designation", stringFilled(func(u *User) *string { return u.Designation })},
	{"qualification", stringFilled(func(u *User) *string { return u.Qualification })},
	{"experience", func(u *User) bool { return u.Experience != nil }},
	{"employeeId", stringFilled(func(u *User) *string { return u.EmployeeID })},
	{"researchInterests", listFilled(func(u *User) []string { return u.ResearchInterests })},
	{"publications", listFilled(func(u *User) []string { return u.Publications })},
	{"specialization", stringFilled(func(u *User) *string { return u.Specialization })},
	{"officeRoom", stringFilled(func(u *User) *string { return u.OfficeRoom })},
	{"officeHours", stringFilled(func(u *User) *string { return u.OfficeHours })},
	{"linkedin", stringFilled(func(u *User) *string { return u.LinkedIn })},
}...)

// checklistForRole returns the completion checklist for a role.
// Unknown roles (e.g. ADMIN) are checked against the common fields only.
func checklistForRole(role RoleType) []profileField {
	switch role {
	case RoleStudent:
		return studentChecklist
	case RoleFaculty:
		return facultyChecklist
	default:
		return commonChecklist
	}
}

// CalculateProfileCompletion derives the profile completion percentage for the
// user's current field values. Pure and total: it never errors, missing
// optional fields simply count as unfilled. Rounds half away from zero.
func (u *User) CalculateProfileCompletion() int {
	checklist := checklistForRole(u.Role)

	filled := 0
	for _, field := range checklist {
		if field.filled(u) {
			filled++
		}
	}

	return int(math.Round(float64(filled) / float64(len(checklist)) * 100))
}
