package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

type fakeAdminRepo struct {
	byEmail map[string]*models.Admin
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	if a, ok := f.byEmail[email]; ok {
		return a, nil
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminRepo) CreateIfNotExists(_ context.Context, a *models.Admin) (bool, error) {
	if _, ok := f.byEmail[a.Email]; ok {
		return false, nil
	}
	a.ID = uuid.New()
	f.byEmail[a.Email] = a
	return true, nil
}

type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[uuid.UUID]*models.Student
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	f := &fakeStudentRepo{students: map[uuid.UUID]*models.Student{}}
	for _, s := range students {
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudentRepo) Create(_ context.Context, s *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.students {
		if existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.RegNo == s.RegNo {
			return apperrors.ErrRegNoAlreadyExists
		}
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.students[s.ID] = s
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.students[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) UpdateProfile(_ context.Context, id uuid.UUID, upd repositories.StudentProfileUpdate) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if upd.CGPA != nil {
		s.CGPA = upd.CGPA
	}
	if upd.ActiveBacklog != nil {
		s.ActiveBacklog = upd.ActiveBacklog
	}
	if upd.Phone != nil {
		s.Phone = upd.Phone
	}
	if upd.ProfileImg != nil {
		s.ProfileImg = upd.ProfileImg
	}
	cp := *s
	return &cp, nil
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*models.Company
}

func newFakeCompanyRepo(companies ...*models.Company) *fakeCompanyRepo {
	f := &fakeCompanyRepo{companies: map[uuid.UUID]*models.Company{}}
	for _, c := range companies {
		f.companies[c.ID] = c
	}
	return f
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *models.Company) error {
	for _, existing := range f.companies {
		if existing.Name == c.Name {
			return apperrors.ErrCompanyAlreadyExists
		}
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Company, error) {
	if c, ok := f.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperrors.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]*models.Company, error) {
	var out []*models.Company
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *models.Company) error {
	if _, ok := f.companies[c.ID]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.companies[id]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	delete(f.companies, id)
	return nil
}

type fakeJobRepo struct {
	jobs []*models.JobListing
}

func (f *fakeJobRepo) Create(_ context.Context, j *models.JobListing) error {
	j.ID = uuid.New()
	if j.Eligibility == nil {
		j.Eligibility = &models.JobEligibility{}
	}
	j.Eligibility.ID = uuid.New()
	j.EligibilityID = j.Eligibility.ID
	f.jobs = append(f.jobs, j)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*models.JobListing, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			cp := *j
			return &cp, nil
		}
	}
	return nil, apperrors.ErrJobNotFound
}

func (f *fakeJobRepo) List(_ context.Context, filter repositories.JobFilter) ([]*models.JobListing, error) {
	out := []*models.JobListing{}
	for _, j := range f.jobs {
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		if filter.CompanyID != uuid.Nil && j.CompanyID != filter.CompanyID {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j *models.JobListing) error {
	for i, existing := range f.jobs {
		if existing.ID == j.ID {
			f.jobs[i] = j
			return nil
		}
	}
	return apperrors.ErrJobNotFound
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, j := range f.jobs {
		if j.ID == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrJobNotFound
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[uuid.UUID]*models.Application
	// updates counts successful status writes
	updates int
	// interleave runs before the compare-and-set, standing in for a concurrent writer
	interleave func(a *models.Application)
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[uuid.UUID]*models.Application{}}
}

func (f *fakeApplicationRepo) Create(_ context.Context, a *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.apps {
		if existing.StudentID == a.StudentID && existing.JobID == a.JobID {
			return apperrors.ErrDuplicateApplication
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.apps[a.ID] = a
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.apps[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to models.ApplicationStatus) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	if f.interleave != nil {
		f.interleave(a)
	}
	if a.Status != from {
		return nil, apperrors.NewConflictError(fmt.Sprintf("cannot move application from %s to %s", from, to))
	}
	a.Status = to
	a.UpdatedAt = time.Now()
	f.updates++
	cp := *a
	return &cp, nil
}

func (f *fakeApplicationRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*models.Application, error) {
	return f.collect(func(a *models.Application) bool { return a.StudentID == studentID }), nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]*models.Application, error) {
	return f.collect(func(a *models.Application) bool { return a.JobID == jobID }), nil
}

func (f *fakeApplicationRepo) List(_ context.Context, filter repositories.ApplicationFilter, limit, offset uint64) ([]*models.Application, int, error) {
	all := f.collect(func(a *models.Application) bool {
		return (filter.Status == "" || a.Status == filter.Status) && (filter.JobID == uuid.Nil || a.JobID == filter.JobID)
	})
	total := len(all)
	if offset >= uint64(total) {
		return nil, total, nil
	}
	end := offset + limit
	if end > uint64(total) {
		end = uint64(total)
	}
	return all[offset:end], total, nil
}

func (f *fakeApplicationRepo) collect(keep func(*models.Application) bool) []*models.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Application
	for _, a := range f.apps {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

type fakeAnnouncementRepo struct {
	list []*models.Announcement
}

func (f *fakeAnnouncementRepo) Create(_ context.Context, a *models.Announcement) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	f.list = append([]*models.Announcement{a}, f.list...)
	return nil
}

func (f *fakeAnnouncementRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Announcement, error) {
	for _, a := range f.list {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAnnouncementNotFound
}

func (f *fakeAnnouncementRepo) List(_ context.Context) ([]*models.Announcement, error) {
	return f.list, nil
}

func (f *fakeAnnouncementRepo) Update(_ context.Context, a *models.Announcement) error {
	for i, existing := range f.list {
		if existing.ID == a.ID {
			f.list[i] = a
			return nil
		}
	}
	return apperrors.ErrAnnouncementNotFound
}

func (f *fakeAnnouncementRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, a := range f.list {
		if a.ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrAnnouncementNotFound
}

type fakeAnalyticRepo struct {
	byJob map[uuid.UUID]*models.Analytic
}

func (f *fakeAnalyticRepo) Create(_ context.Context, a *models.Analytic) error {
	if _, ok := f.byJob[a.JobID]; ok {
		return apperrors.ErrDuplicateAnalytic
	}
	a.ID = uuid.New()
	f.byJob[a.JobID] = a
	return nil
}

func (f *fakeAnalyticRepo) GetByJobID(_ context.Context, jobID uuid.UUID) (*models.Analytic, error) {
	if a, ok := f.byJob[jobID]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, apperrors.ErrAnalyticNotFound
}

func (f *fakeAnalyticRepo) List(_ context.Context) ([]*models.Analytic, error) {
	var out []*models.Analytic
	for _, a := range f.byJob {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAnalyticRepo) Update(_ context.Context, a *models.Analytic) error {
	if _, ok := f.byJob[a.JobID]; !ok {
		return apperrors.ErrAnalyticNotFound
	}
	f.byJob[a.JobID] = a
	return nil
}

func (f *fakeAnalyticRepo) DeleteByJobID(_ context.Context, jobID uuid.UUID) error {
	if _, ok := f.byJob[jobID]; !ok {
		return apperrors.ErrAnalyticNotFound
	}
	delete(f.byJob, jobID)
	return nil
}

// fakeStorage records saved and deleted paths without touching disk
type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFileWithPath(fh *multipart.FileHeader, subPath string) (string, error) {
	p := "/uploads/" + subPath + "/" + uuid.NewString() + ".png"
	f.saved = append(f.saved, p)
	return p, nil
}

func (f *fakeStorage) DeleteFile(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

var (
	_ repositories.IAdminRepository        = (*fakeAdminRepo)(nil)
	_ repositories.IStudentRepository      = (*fakeStudentRepo)(nil)
	_ repositories.ICompanyRepository      = (*fakeCompanyRepo)(nil)
	_ repositories.IJobRepository          = (*fakeJobRepo)(nil)
	_ repositories.IApplicationRepository  = (*fakeApplicationRepo)(nil)
	_ repositories.IAnnouncementRepository = (*fakeAnnouncementRepo)(nil)
	_ repositories.IAnalyticRepository     = (*fakeAnalyticRepo)(nil)
)

func ptr[T any](v T) *T { return &v }
