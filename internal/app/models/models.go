package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleFaculty RoleType = "FACULTY"
	RoleAdmin   RoleType = "ADMIN"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// JobType defines the employment type of a job posting
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypeInternship JobType = "Internship"
	JobTypePartTime   JobType = "Part-time"
)

// IsValid reports whether the job type is one of the known types.
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypeInternship, JobTypePartTime:
		return true
	}
	return false
}

// ApplicationStatus defines the review state of a job application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationReviewed ApplicationStatus = "Reviewed"
	ApplicationAccepted ApplicationStatus = "Accepted"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// IsValid reports whether the status is one of the known states.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// ResourceKind defines the media type of a shared resource
type ResourceKind string

const (
	ResourcePDF      ResourceKind = "PDF"
	ResourceVideo    ResourceKind = "Video"
	ResourceLink     ResourceKind = "Link"
	ResourceDocument ResourceKind = "Document"
)

// AnnouncementType distinguishes plain announcements from events
type AnnouncementType string

const (
	AnnouncementGeneral AnnouncementType = "Announcement"
	AnnouncementEvent   AnnouncementType = "Event"
)
