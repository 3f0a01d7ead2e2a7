package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// JobRepository is the persistence surface the job service needs.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetAll(ctx context.Context) ([]*models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
}

// ApplicationRepository is the persistence surface for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	ExistsForStudentAndJob(ctx context.Context, studentID, jobID int64) (bool, error)
	GetAll(ctx context.Context) ([]*models.Application, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	Delete(ctx context.Context, id int64) error
}

// JobService handles job postings and student applications
type JobService struct {
	jobRepo         JobRepository
	applicationRepo ApplicationRepository
	userRepo        UserRepository
	logger          zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo JobRepository, applicationRepo ApplicationRepository, userRepo UserRepository, logger zerolog.Logger) *JobService {
	return &JobService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// CreateJob posts a new job on behalf of the given user
func (s *JobService) CreateJob(ctx context.Context, posterID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	jobType := req.Type
	if jobType == "" {
		jobType = models.JobTypeFullTime
	}
	if !jobType.IsValid() {
		return nil, apperrors.NewValidationError("type", "type must be one of Full-time, Internship, Part-time")
	}

	job := &models.Job{
		PostedBy:    posterID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Type:        jobType,
		Description: req.Description,
		Salary:      req.Salary,
	}
	if req.Requirements != nil {
		job.Requirements = []string(*req.Requirements)
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline.Value
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", job.ID).Int64("postedBy", posterID).Msg("Job posted")
	return job, nil
}

// GetJobs returns all job postings, newest first
func (s *JobService) GetJobs(ctx context.Context) ([]*models.Job, error) {
	return s.jobRepo.GetAll(ctx)
}

// GetJobByID returns a single job posting
func (s *JobService) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// DeleteJob removes a job posting. Only the poster or an admin may delete.
func (s *JobService) DeleteJob(ctx context.Context, jobID, userID int64, role models.RoleType) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.PostedBy != userID && role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	return s.jobRepo.Delete(ctx, jobID)
}

// Apply submits a student's application to a job. A student may apply to a
// given job once; the stored resume reference is used when none is supplied.
func (s *JobService) Apply(ctx context.Context, studentID, jobID int64, req *dto.ApplyJobRequest) (*models.Application, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	exists, err := s.applicationRepo.ExistsForStudentAndJob(ctx, studentID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	resume := ""
	if req != nil && req.Resume != nil {
		resume = *req.Resume
	}
	if resume == "" {
		student, err := s.userRepo.GetByID(ctx, studentID)
		if err != nil {
			return nil, err
		}
		if student.Resume == nil || *student.Resume == "" {
			return nil, apperrors.NewValidationError("resume", "upload a resume to your profile before applying")
		}
		resume = *student.Resume
	}

	app := &models.Application{
		StudentID: studentID,
		JobID:     jobID,
		Resume:    resume,
		Status:    models.ApplicationPending,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", jobID).Int64("studentID", studentID).Msg("Application submitted")
	return app, nil
}
