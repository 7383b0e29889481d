// Package services holds the placement business logic. Every service is an
// interface backed by a private implementation that only talks to the
// repository interfaces, so tests can run against in-memory stores.
package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/domain"
	pkgAuth "github.com/yigit/tnp/internal/pkg/auth"
	"github.com/yigit/tnp/internal/pkg/filestorage"
)

// Services groups every service the HTTP layer depends on
type Services struct {
	Auth         AuthService
	Student      StudentService
	Company      CompanyService
	Job          JobService
	Application  ApplicationService
	Announcement AnnouncementService
	Analytic     AnalyticService
}

// Options carries the collaborators shared by several services
type Options struct {
	JWT         *pkgAuth.JWTService
	Storage     filestorage.FileStorage
	Policy      *auth.AccessPolicy
	Transitions domain.TransitionPolicy
	Logger      zerolog.Logger
}

// NewServices wires all services on top of the repositories
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	return &Services{
		Auth:         NewAuthService(repos.AdminRepository, repos.StudentRepository, opts.JWT, opts.Logger),
		Student:      NewStudentService(repos.StudentRepository, opts.Storage),
		Company:      NewCompanyService(repos.CompanyRepository),
		Job:          NewJobService(repos.JobRepository, repos.CompanyRepository, repos.StudentRepository),
		Application:  NewApplicationService(repos.ApplicationRepository, repos.JobRepository, repos.StudentRepository, opts.Policy, opts.Transitions, opts.Logger),
		Announcement: NewAnnouncementService(repos.AnnouncementRepository, opts.Policy),
		Analytic:     NewAnalyticService(repos.AnalyticRepository),
	}
}
