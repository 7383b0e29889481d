package repositories

import (
	"github.com/yigit/tnp/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository        *AdminRepository
	StudentRepository      *StudentRepository
	CompanyRepository      *CompanyRepository
	JobRepository          *JobRepository
	ApplicationRepository  *ApplicationRepository
	AnnouncementRepository *AnnouncementRepository
	AnalyticRepository     *AnalyticRepository
}

// NewRepositories initializes all repositories on the shared pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AdminRepository:        NewAdminRepository(database.Pool),
		StudentRepository:      NewStudentRepository(database.Pool),
		CompanyRepository:      NewCompanyRepository(database.Pool),
		JobRepository:          NewJobRepository(database),
		ApplicationRepository:  NewApplicationRepository(database.Pool),
		AnnouncementRepository: NewAnnouncementRepository(database.Pool),
		AnalyticRepository:     NewAnalyticRepository(database.Pool),
	}
}
