package candidateprofile

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/auditrecrut/backend/internal/domain"
)

type fakeGraduateRepo struct {
	existing  *domain.GraduateProfile
	upserted  *domain.GraduateProfile
	upsertErr error
}

func (f *fakeGraduateRepo) GetByUserID(ctx context.Context, userID string) (*domain.GraduateProfile, error) {
	if f.existing == nil {
		return nil, domain.ErrProfileNotFound
	}
	return f.existing, nil
}

func (f *fakeGraduateRepo) Upsert(ctx context.Context, profile *domain.GraduateProfile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = profile
	return nil
}

type fakeProfessionalRepo struct {
	existing  *domain.ProfessionalProfile
	upserted  *domain.ProfessionalProfile
	upsertErr error
}

func (f *fakeProfessionalRepo) GetByUserID(ctx context.Context, userID string) (*domain.ProfessionalProfile, error) {
	if f.existing == nil {
		return nil, domain.ErrProfileNotFound
	}
	return f.existing, nil
}

func (f *fakeProfessionalRepo) Upsert(ctx context.Context, profile *domain.ProfessionalProfile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = profile
	return nil
}

type fakeUserRepo struct {
	completed map[string]bool
}

func (f *fakeUserRepo) Create(ctx context.Context, profile *domain.UserProfile) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	return &domain.UserProfile{ID: id, ProfileCompleted: f.completed[id]}, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.UserProfile, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetProfileCompleted(ctx context.Context, userID string, completed bool) error {
	if f.completed == nil {
		f.completed = make(map[string]bool)
	}
	f.completed[userID] = completed
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) { return 0, nil }

type fakeProfileCache struct {
	replaced *domain.UserProfile
}

func (f *fakeProfileCache) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileCache) Replace(ctx context.Context, profile *domain.UserProfile, ttl time.Duration) error {
	f.replaced = profile
	return nil
}

func (f *fakeProfileCache) Invalidate(ctx context.Context, userID string) error { return nil }

type fakeStorage struct {
	uploads map[string][]byte
}

func (f *fakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[key] = data
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cv.example.com/" + key
}

type fixture struct {
	uc           *ProfileFormUseCase
	graduate     *fakeGraduateRepo
	professional *fakeProfessionalRepo
	users        *fakeUserRepo
	cache        *fakeProfileCache
	storage      *fakeStorage
}

func newFixture() *fixture {
	f := &fixture{
		graduate:     &fakeGraduateRepo{},
		professional: &fakeProfessionalRepo{},
		users:        &fakeUserRepo{},
		cache:        &fakeProfileCache{},
		storage:      &fakeStorage{},
	}
	f.uc = NewProfileFormUseCase(f.graduate, f.professional, f.users, f.cache, f.storage, PlaceholderAnalysis{})
	f.uc.now = func() time.Time { return time.Unix(1700000000, 0) }
	return f
}

func graduateRequest() *GraduateProfileRequest {
	return &GraduateProfileRequest{
		EducationLevel:     "Master",
		Institution:        "ESC",
		GraduationYear:     2025,
		ProgramDescription: "Audit et contrôle",
		SubjectsLiked:      "comptabilité, audit , fiscalité",
	}
}

func professionalRequest() *ProfessionalProfileRequest {
	return &ProfessionalProfileRequest{
		YearsExperience: 4,
		BestSkills:      "consolidation, IFRS",
	}
}

func TestSaveGraduate(t *testing.T) {
	f := newFixture()

	result, err := f.uc.SaveGraduate(context.Background(), "user-1", graduateRequest())
	if err != nil {
		t.Fatalf("SaveGraduate returned error: %v", err)
	}

	if f.graduate.upserted == nil {
		t.Fatal("graduate profile not upserted")
	}
	wantSubjects := []string{"comptabilité", "audit", "fiscalité"}
	if !reflect.DeepEqual(f.graduate.upserted.SubjectsLiked, wantSubjects) {
		t.Errorf("subjects = %v, want %v", f.graduate.upserted.SubjectsLiked, wantSubjects)
	}
	if !f.users.completed["user-1"] {
		t.Errorf("profile_completed not set after save")
	}
	if f.cache.replaced == nil || !f.cache.replaced.ProfileCompleted {
		t.Errorf("cached profile not refreshed with completed state")
	}
	if result.AnalysisStatus != "pending" {
		t.Errorf("analysis status = %q, want pending", result.AnalysisStatus)
	}
}

func TestSaveGraduatePreservesCVURL(t *testing.T) {
	f := newFixture()
	cvURL := "https://cv.example.com/old.pdf"
	f.graduate.existing = &domain.GraduateProfile{ID: "gp-1", UserID: "user-1", CVURL: &cvURL}

	if _, err := f.uc.SaveGraduate(context.Background(), "user-1", graduateRequest()); err != nil {
		t.Fatalf("SaveGraduate returned error: %v", err)
	}
	if f.graduate.upserted.ID != "gp-1" {
		t.Errorf("existing record id not reused: %q", f.graduate.upserted.ID)
	}
	if f.graduate.upserted.CVURL == nil || *f.graduate.upserted.CVURL != cvURL {
		t.Errorf("cv_url not preserved across resubmit")
	}
}

func TestSaveGraduateUpsertFailureAborts(t *testing.T) {
	f := newFixture()
	f.graduate.upsertErr = errors.New("db down")

	_, err := f.uc.SaveGraduate(context.Background(), "user-1", graduateRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	if f.users.completed["user-1"] {
		t.Errorf("profile_completed set despite failed save")
	}
	if f.cache.replaced != nil {
		t.Errorf("cache refreshed despite failed save")
	}
}

func TestSaveProfessionalRejectsOversizedCV(t *testing.T) {
	f := newFixture()
	cv := &CVFile{Name: "cv.pdf", Size: MaxCVSize + 1, ContentType: "application/pdf"}

	_, err := f.uc.SaveProfessional(context.Background(), "user-1", professionalRequest(), cv)
	if !errors.Is(err, domain.ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
	if len(f.storage.uploads) != 0 {
		t.Errorf("storage called for an oversized file")
	}
	if f.professional.upserted != nil {
		t.Errorf("profile saved despite rejected file")
	}
}

func TestSaveProfessionalUploadsCV(t *testing.T) {
	f := newFixture()
	cv := &CVFile{
		Name:        "mon cv.pdf",
		Size:        9 << 20,
		ContentType: "application/pdf",
		Data:        []byte("pdf-bytes"),
	}

	result, err := f.uc.SaveProfessional(context.Background(), "user-1", professionalRequest(), cv)
	if err != nil {
		t.Fatalf("SaveProfessional returned error: %v", err)
	}

	wantKey := fmt.Sprintf("user-1_%d.pdf", 1700000000)
	if _, ok := f.storage.uploads[wantKey]; !ok {
		t.Fatalf("uploaded keys %v, want %s", keys(f.storage.uploads), wantKey)
	}
	wantURL := "https://cv.example.com/" + wantKey
	if f.professional.upserted.CVURL != wantURL {
		t.Errorf("cv_url = %q, want %q", f.professional.upserted.CVURL, wantURL)
	}
	if result.Professional == nil {
		t.Errorf("saved record missing from result")
	}
}

func TestSaveProfessionalWithoutFileKeepsCVURL(t *testing.T) {
	f := newFixture()
	f.professional.existing = &domain.ProfessionalProfile{
		ID:     "pp-1",
		UserID: "user-1",
		CVURL:  "https://cv.example.com/previous.pdf",
	}

	if _, err := f.uc.SaveProfessional(context.Background(), "user-1", professionalRequest(), nil); err != nil {
		t.Fatalf("SaveProfessional returned error: %v", err)
	}
	if len(f.storage.uploads) != 0 {
		t.Errorf("storage called with no file attached")
	}
	if f.professional.upserted.CVURL != "https://cv.example.com/previous.pdf" {
		t.Errorf("cv_url lost on resubmit without file: %q", f.professional.upserted.CVURL)
	}
	if f.professional.upserted.ID != "pp-1" {
		t.Errorf("existing record id not reused: %q", f.professional.upserted.ID)
	}
}

func TestGetReturnsNilWhenMissing(t *testing.T) {
	f := newFixture()

	g, err := f.uc.GetGraduate(context.Background(), "user-1")
	if err != nil || g != nil {
		t.Errorf("GetGraduate = (%v, %v), want (nil, nil)", g, err)
	}
	p, err := f.uc.GetProfessional(context.Background(), "user-1")
	if err != nil || p != nil {
		t.Errorf("GetProfessional = (%v, %v), want (nil, nil)", p, err)
	}
}

func TestCVKeyExtensionFallback(t *testing.T) {
	f := newFixture()
	if got := f.uc.cvKey("user-1", "resume"); got != "user-1_1700000000.bin" {
		t.Errorf("cvKey without extension = %q", got)
	}
	if got := f.uc.cvKey("user-1", "resume.PDF"); got != "user-1_1700000000.PDF" {
		t.Errorf("cvKey = %q", got)
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
