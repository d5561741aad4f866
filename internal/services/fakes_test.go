package services

import (
	"context"
	"sort"
	"sync"

	"techhub_backend/internal/models"
	"techhub_backend/internal/oauth"
	"techhub_backend/internal/repositories"
)

// Repos en memoria para tests del service layer. Respetan los
// contratos de error de las implementaciones sobre Mongo, incluido
// el índice único por email.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "picture":
			u.Picture = v.(string)
		case "role":
			u.Role = v.(models.UserRole)
		case "is_active":
			u.IsActive = v.(bool)
		case "is_verified":
			u.IsVerified = v.(bool)
		case "password_hash":
			u.PasswordHash = v.(string)
		case "github_url":
			u.GithubURL = v.(string)
		case "linkedin_url":
			u.LinkedinURL = v.(string)
		case "portfolio_url":
			u.PortfolioURL = v.(string)
		case "skills":
			u.Skills = v.([]string)
		case "bio":
			u.Bio = v.(string)
		case "company_name":
			u.CompanyName = v.(string)
		case "company_document":
			u.CompanyDocument = v.(string)
		}
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, limit, offset int64) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= int64(len(all)) {
		return []models.User{}, nil
	}
	end := offset + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[offset:end], nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role models.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.SessionToken] = &cp
	return nil
}

func (r *fakeSessionRepo) FindByToken(_ context.Context, token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, repositories.ErrSessionNotFound
}

func (r *fakeSessionRepo) DeleteByToken(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[token]; ok {
		delete(r.sessions, token)
		return true, nil
	}
	return false, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) FindByID(_ context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, id string, fields map[string]interface{}) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			j.Title = v.(string)
		case "description":
			j.Description = v.(string)
		case "type":
			j.Type = v.(models.JobType)
		case "modality":
			j.Modality = v.(models.JobModality)
		case "location":
			j.Location = v.(string)
		case "skills":
			j.Skills = v.([]string)
		case "is_active":
			j.IsActive = v.(bool)
		}
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) FindWithFilter(_ context.Context, filter repositories.JobFilter) ([]models.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if !j.IsActive {
			continue
		}
		if filter.Type != "" && j.Type != filter.Type {
			continue
		}
		if filter.Modality != "" && j.Modality != filter.Modality {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) FindIDsByCompany(_ context.Context, companyID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := []string{}
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			ids = append(ids, j.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.Application)}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.UserID == app.UserID && a.JobID == app.JobID {
			return repositories.ErrAlreadyApplied
		}
	}
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.apps[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByUser(_ context.Context, userID string, skip, limit int64) ([]models.Application, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Application{}
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return paginateApps(out, skip, limit), int64(len(out)), nil
}

func (r *fakeApplicationRepo) FindByJobIDs(_ context.Context, jobIDs []string, skip, limit int64) ([]models.Application, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = true
	}
	out := []models.Application{}
	for _, a := range r.apps {
		if wanted[a.JobID] {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return paginateApps(out, skip, limit), int64(len(out)), nil
}

func paginateApps(apps []models.Application, skip, limit int64) []models.Application {
	if skip >= int64(len(apps)) {
		return []models.Application{}
	}
	end := skip + limit
	if limit <= 0 || end > int64(len(apps)) {
		end = int64(len(apps))
	}
	return apps[skip:end]
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus, notes string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	a.Status = status
	if notes != "" {
		a.Notes = notes
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok || a.UserID != userID {
		return repositories.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *fakeApplicationRepo) CountByStatusForUser(_ context.Context, userID string) (map[models.ApplicationStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[models.ApplicationStatus]int64{}
	for _, a := range r.apps {
		if a.UserID == userID {
			counts[a.Status]++
		}
	}
	return counts, nil
}

func (r *fakeApplicationRepo) CountByStatusForJobs(_ context.Context, jobIDs []string) (map[models.ApplicationStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = true
	}
	counts := map[models.ApplicationStatus]int64{}
	for _, a := range r.apps {
		if wanted[a.JobID] {
			counts[a.Status]++
		}
	}
	return counts, nil
}

type fakeSavedItemRepo struct {
	mu    sync.Mutex
	items map[string]*models.SavedItem
}

func newFakeSavedItemRepo() *fakeSavedItemRepo {
	return &fakeSavedItemRepo{items: make(map[string]*models.SavedItem)}
}

func (r *fakeSavedItemRepo) Create(_ context.Context, item *models.SavedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.UserID == item.UserID && it.ItemType == item.ItemType && it.ItemID == item.ItemID {
			return repositories.ErrItemAlreadySaved
		}
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeSavedItemRepo) FindByUser(_ context.Context, userID string) ([]models.SavedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.SavedItem{}
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeSavedItemRepo) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok || it.UserID != userID {
		return repositories.ErrSavedItemNotFound
	}
	delete(r.items, id)
	return nil
}

// fakeExchanger simula al proveedor de identidad externo.
type fakeExchanger struct {
	data *oauth.SessionData
	err  error
}

func (f *fakeExchanger) ExchangeSession(_ context.Context, _ string) (*oauth.SessionData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}
