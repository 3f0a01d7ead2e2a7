package dto

import (
	"mime/multipart"
	"net/url"
)

// UpdateProfileRequest represents a partial profile update. Every field is
// optional; a nil pointer means the client did not send the key at all.
// Name, email, and role are immutable through this path and have no slot here,
// so unknown or disallowed keys in the request body are silently dropped.
type UpdateProfileRequest struct {
	Phone        *string       `json:"phone"`
	DateOfBirth  *OptionalDate `json:"dateOfBirth"`
	Department   *string       `json:"department"`
	ProfileImage *string       `json:"profileImage"`

	// Student fields
	Year             *OptionalInt   `json:"year"`
	Semester         *OptionalInt   `json:"semester"`
	EnrollmentNumber *string        `json:"enrollmentNumber"`
	CGPA             *OptionalFloat `json:"cgpa"`
	Skills           *StringList    `json:"skills"`
	Resume           *string        `json:"resume"`
	Bio              *string        `json:"bio"`
	PortfolioURL     *string        `json:"portfolioUrl"`
	LinkedIn         *string        `json:"linkedin"`
	GitHub           *string        `json:"github"`
	Address          *string        `json:"address"`
	City             *string        `json:"city"`
	State            *string        `json:"state"`
	Pincode          *string        `json:"pincode"`

	// Faculty fields
	Designation       *string      `json:"designation"`
	Qualification     *string      `json:"qualification"`
	Experience        *OptionalInt `json:"experience"`
	EmployeeID        *string      `json:"employeeId"`
	ResearchInterests *StringList  `json:"researchInterests"`
	Publications      *StringList  `json:"publications"`
	Specialization    *string      `json:"specialization"`
	OfficeRoom        *string      `json:"officeRoom"`
	OfficeHours       *string      `json:"officeHours"`
}

// ProfileUpload carries the optional file attachments of a multipart profile
// update. The stored references replace the corresponding profile fields.
type ProfileUpload struct {
	ProfileImage *multipart.FileHeader
	Resume       *multipart.FileHeader
}

// BindForm fills the request from multipart form values, applying the same
// per-field coercions as the JSON path. Keys outside the allowed set are
// ignored. Returns the first coercion failure encountered.
func (r *UpdateProfileRequest) BindForm(form url.Values) error {
	str := func(key string, dst **string) {
		if form.Has(key) {
			v := form.Get(key)
			*dst = &v
		}
	}

	str("phone", &r.Phone)
	str("department", &r.Department)
	str("profileImage", &r.ProfileImage)
	str("enrollmentNumber", &r.EnrollmentNumber)
	str("resume", &r.Resume)
	str("bio", &r.Bio)
	str("portfolioUrl", &r.PortfolioURL)
	str("linkedin", &r.LinkedIn)
	str("github", &r.GitHub)
	str("address", &r.Address)
	str("city", &r.City)
	str("state", &r.State)
	str("pincode", &r.Pincode)
	str("designation", &r.Designation)
	str("qualification", &r.Qualification)
	str("employeeId", &r.EmployeeID)
	str("specialization", &r.Specialization)
	str("officeRoom", &r.OfficeRoom)
	str("officeHours", &r.OfficeHours)

	if form.Has("dateOfBirth") {
		v, err := ParseOptionalDate(form.Get("dateOfBirth"))
		if err != nil {
			return err
		}
		r.DateOfBirth = &OptionalDate{Value: v}
	}

	intField := func(key string, dst **OptionalInt) error {
		if !form.Has(key) {
			return nil
		}
		v, err := ParseOptionalInt(form.Get(key))
		if err != nil {
			return err
		}
		*dst = &OptionalInt{Value: v}
		return nil
	}
	if err := intField("year", &r.Year); err != nil {
		return err
	}
	if err := intField("semester", &r.Semester); err != nil {
		return err
	}
	if err := intField("experience", &r.Experience); err != nil {
		return err
	}

	if form.Has("cgpa") {
		v, err := ParseOptionalFloat(form.Get("cgpa"))
		if err != nil {
			return err
		}
		r.CGPA = &OptionalFloat{Value: v}
	}

	listField := func(key string, dst **StringList) {
		if form.Has(key) {
			items := StringList(ParseStringList(form.Get(key)))
			*dst = &items
		}
	}
	listField("skills", &r.Skills)
	listField("researchInterests", &r.ResearchInterests)
	listField("publications", &r.Publications)

	return nil
}

// StudentSummary is the trimmed student listing returned to faculty and admins.
type StudentSummary struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Department        *string `json:"department,omitempty"`
	Year              *int    `json:"year,omitempty"`
	ProfileCompletion int     `json:"profileCompletion"`
}
