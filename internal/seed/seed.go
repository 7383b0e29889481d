// Package seed inserts the demo placement data used in development. Every
// step tolerates data that already exists, so it is safe to run on each start.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/tnp/internal/app/models"
	appRepos "github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/auth"
)

// Store is the set of repositories the seed writes through
type Store struct {
	Admins       appRepos.IAdminRepository
	Students     appRepos.IStudentRepository
	Companies    appRepos.ICompanyRepository
	Jobs         appRepos.IJobRepository
	Applications appRepos.IApplicationRepository
}

// StoreFrom adapts the repository container
func StoreFrom(r *appRepos.Repositories) Store {
	return Store{
		Admins:       r.AdminRepository,
		Students:     r.StudentRepository,
		Companies:    r.CompanyRepository,
		Jobs:         r.JobRepository,
		Applications: r.ApplicationRepository,
	}
}

// Options controls the seeded admin account
type Options struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	// HashCost overrides the bcrypt cost; zero means auth.BcryptCost
	HashCost int
}

const (
	demoStudentEmail    = "student1@example.com"
	demoStudentPassword = "Student@123"
	demoJobTitle        = "Backend Intern"
)

var demoCompanies = []appModels.Company{
	{
		Name:          "Acme Corp",
		Description:   "Sample software firm",
		Industry:      "Software",
		Website:       "https://acme.example",
		ContactPerson: "Alice",
		ContactEmail:  "hr@acme.example",
	},
	{
		Name:          "Megacorp",
		Description:   "Sample enterprise",
		Industry:      "Finance",
		Website:       "https://megacorp.example",
		ContactPerson: "Bob",
		ContactEmail:  "hr@megacorp.example",
	},
}

// CreateDefaultData creates the admin, two companies, an internship, a
// student and one application if they don't exist. Failures are collected
// and returned together; later steps still run where they can.
func CreateDefaultData(ctx context.Context, store Store, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedAdmin(ctx, store, opts, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		finalErr = errors.Join(finalErr, err)
	}

	companies, err := seedCompanies(ctx, store)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default companies")
		finalErr = errors.Join(finalErr, err)
	}

	acme, ok := companies["Acme Corp"]
	if !ok {
		return errors.Join(finalErr, errors.New("seed: Acme Corp unavailable, skipping job and application"))
	}

	job, err := seedJob(ctx, store, acme)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default job")
		return errors.Join(finalErr, err)
	}

	student, err := seedStudent(ctx, store, opts)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default student")
		return errors.Join(finalErr, err)
	}

	app := &appModels.Application{StudentID: student.ID, JobID: job.ID, Status: appModels.StatusApplied}
	if err := store.Applications.Create(ctx, app); err != nil && !errors.Is(err, apperrors.ErrDuplicateApplication) {
		lgr.Error().Err(err).Msg("Error creating default application")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data ready")
	}
	return finalErr
}

func hashCost(opts Options) int {
	if opts.HashCost > 0 {
		return opts.HashCost
	}
	return auth.BcryptCost
}

func seedAdmin(ctx context.Context, store Store, opts Options, lgr zerolog.Logger) error {
	hash, err := auth.HashPasswordWithCost(opts.AdminPassword, hashCost(opts))
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	created, err := store.Admins.CreateIfNotExists(ctx, &appModels.Admin{
		Name:     opts.AdminName,
		Email:    opts.AdminEmail,
		Password: hash,
	})
	if err != nil {
		return err
	}
	if created {
		lgr.Info().Str("email", opts.AdminEmail).Msg("Default admin created")
	}
	return nil
}

func seedCompanies(ctx context.Context, store Store) (map[string]*appModels.Company, error) {
	existing, err := store.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*appModels.Company, len(existing))
	for _, c := range existing {
		byName[c.Name] = c
	}

	var finalErr error
	for _, tmpl := range demoCompanies {
		if _, ok := byName[tmpl.Name]; ok {
			continue
		}
		c := tmpl
		if err := store.Companies.Create(ctx, &c); err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("company %s: %w", tmpl.Name, err))
			continue
		}
		byName[c.Name] = &c
	}
	return byName, finalErr
}

func seedJob(ctx context.Context, store Store, company *appModels.Company) (*appModels.JobListing, error) {
	jobs, err := store.Jobs.List(ctx, appRepos.JobFilter{CompanyID: company.ID})
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if j.JobTitle == demoJobTitle {
			return j, nil
		}
	}

	minCGPA := 7.0
	job := &appModels.JobListing{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		JobTitle:    demoJobTitle,
		JobType:     appModels.JobTypeInternship,
		Description: "6 month backend internship",
		Status:      appModels.JobStatusOpen,
		Eligibility: &appModels.JobEligibility{
			Branches:        []appModels.Branch{appModels.BranchCSE, appModels.BranchIT},
			GraduationYears: []int{2025, 2026},
			MinCGPA:         &minCGPA,
		},
	}
	if err := store.Jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func seedStudent(ctx context.Context, store Store, opts Options) (*appModels.Student, error) {
	student, err := store.Students.GetByEmail(ctx, demoStudentEmail)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}

	hash, err := auth.HashPasswordWithCost(demoStudentPassword, hashCost(opts))
	if err != nil {
		return nil, fmt.Errorf("hash student password: %w", err)
	}
	student = &appModels.Student{
		Name:           "Test Student",
		RegNo:          "REG2025001",
		Email:          demoStudentEmail,
		Password:       hash,
		Branch:         appModels.BranchCSE,
		GraduationYear: 2026,
	}
	if err := store.Students.Create(ctx, student); err != nil {
		return nil, err
	}

	cgpa, backlog := 8.2, 0
	return store.Students.UpdateProfile(ctx, student.ID, appRepos.StudentProfileUpdate{
		CGPA:          &cgpa,
		ActiveBacklog: &backlog,
	})
}
