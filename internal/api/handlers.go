package api

import (
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/db"
	"github.com/Superak0s/SuperGym-App-sub001/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	authCookieName = "supergym_token"
	contextUserKey = "current_user"

	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	repos        *db.Repositories
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	performance  *services.PerformanceService
	lifecycle    *services.DayLifecycleService
	configurator *services.CreatineConfigurator
	scheduler    *services.ReminderScheduler
	sync         *services.SyncService
	settings     *services.SettingsService

	// newSyncTarget builds the per-user target when the account has a
	// server URL configured; the service-wide target is the fallback.
	newSyncTarget func(baseURL string) services.SyncTarget
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, scheduler *services.ReminderScheduler, syncTarget services.SyncTarget, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}
	repos := db.NewRepositories(database)

	return &Handler{
		db:           database,
		repos:        repos,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		performance:  services.NewPerformanceService(repos.SetRecords, repos.Plans),
		lifecycle:    services.NewDayLifecycleService(repos.DayStatus, repos.SetRecords, repos.Sessions, repos.Plans),
		configurator: services.NewCreatineConfigurator(repos.Creatine, scheduler),
		scheduler:    scheduler,
		sync:         services.NewSyncService(repos.SyncQueue, syncTarget),
		settings:     services.NewSettingsService(repos.Users),
		newSyncTarget: func(baseURL string) services.SyncTarget {
			return services.NewHTTPSyncTarget(baseURL)
		},
	}
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type credentialsInput struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	DisplayName string `json:"display_name" form:"display_name"`
	RememberMe  bool   `json:"remember_me" form:"remember_me"`
}

type setPayload struct {
	Weight      float64    `json:"weight"`
	Reps        int        `json:"reps"`
	CompletedAt *time.Time `json:"completed_at"`
	Note        string     `json:"note"`
	IsWarmup    bool       `json:"is_warmup"`
}

type planExercisePayload struct {
	DayNumber   int    `json:"day_number"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	TargetSets  int    `json:"target_sets"`
	TargetReps  int    `json:"target_reps"`
}

type planPayload struct {
	Name      string                `json:"name"`
	WeekCount int                   `json:"week_count"`
	Exercises []planExercisePayload `json:"exercises"`
}

type creatineSavePayload struct {
	services.CreatineSettingsInput
	Capabilities services.ReportedCapabilities `json:"capabilities"`
}

type intakePayload struct {
	Grams float64 `json:"grams"`
}

type sessionStartPayload struct {
	DayNumber int `json:"day_number"`
}

type serverURLPayload struct {
	ServerURL string `json:"server_url" form:"server_url"`
}

type profilePayload struct {
	DisplayName string `json:"display_name" form:"display_name"`
}
