package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/mindguard/internal/db"
	"github.com/terraincognita07/mindguard/internal/scoring"
	"github.com/terraincognita07/mindguard/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL = 7 * 24 * time.Hour
	loginAttemptLimit   = 8
	loginAttemptWindow  = 15 * time.Minute
)

type Options struct {
	SecretKey          string
	Location           *time.Location
	AnalysisWindowDays int
	Logger             *zap.Logger
	// Entries overrides the SQLite entry repository, e.g. with the MongoDB store.
	Entries services.EntryStore
}

type Handler struct {
	secretKey []byte
	location  *time.Location
	logger    *zap.Logger
	now       func() time.Time

	repositories      *db.Repositories
	authService       *services.AuthService
	entryService      *services.EntryService
	analysisService   *services.AnalysisService
	assessmentService *services.AssessmentService
	counselorService  *services.CounselorService
	exportService     *services.ExportService
	settingsService   *services.SettingsService

	loginLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, options Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if len(options.SecretKey) == 0 {
		return nil, errors.New("secret key is required")
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.AnalysisWindowDays <= 0 {
		options.AnalysisWindowDays = scoring.DefaultWindowSize
	}

	handler := &Handler{
		secretKey:    []byte(options.SecretKey),
		location:     options.Location,
		logger:       options.Logger,
		now:          time.Now,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
	}
	return handler.withDependencies(database, options), nil
}

func (handler *Handler) withDependencies(database *gorm.DB, options Options) *Handler {
	handler.repositories = db.NewRepositories(database)

	var entries services.EntryStore = handler.repositories.Entries
	if options.Entries != nil {
		entries = options.Entries
	}

	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.entryService = services.NewEntryService(entries)
	handler.analysisService = services.NewAnalysisService(handler.entryService, options.AnalysisWindowDays)
	handler.assessmentService = services.NewAssessmentService(handler.repositories.Assessments)
	handler.counselorService = services.NewCounselorService(handler.repositories.Users, handler.analysisService)
	handler.exportService = services.NewExportService(handler.entryService)
	handler.settingsService = services.NewSettingsService(handler.repositories.Users, handler.entryService)
	return handler
}
