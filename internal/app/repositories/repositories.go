package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	User         *UserRepository
	Job          *JobRepository
	Application  *ApplicationRepository
	Resource     *ResourceRepository
	Announcement *AnnouncementRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Job:          NewJobRepository(db),
		Application:  NewApplicationRepository(db),
		Resource:     NewResourceRepository(db),
		Announcement: NewAnnouncementRepository(db),
	}
}
