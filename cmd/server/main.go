package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"zyberian-site/internal/config"
	"zyberian-site/internal/database"
	"zyberian-site/internal/handlers"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/mailer"
	"zyberian-site/internal/resumes"
	"zyberian-site/internal/server"
	"zyberian-site/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func main() {
	log := logger.NewLogger("server")

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}
	defer sqlDB.Close()

	if err := database.Migrate(sqlDB); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	storage := database.NewStorage(db)

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		if _, err := database.SeedAdmin(ctx, storage, cfg.Admin.Username, cfg.Admin.Password, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin")
		}
	}

	store := session.NewStore(storage, cfg.Session.MaxAge, []byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		Secure:   cfg.Session.SecureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	go store.Prune(ctx, cfg.Session.PruneInterval, log)

	resumeStore, uploadDir := newResumeStore(ctx, cfg.Uploads, log)

	h := handlers.New(storage, mailer.New(cfg.Email, log), resumeStore, log)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := server.NewRouter(server.Deps{
		Handler:   h,
		Sessions:  store,
		Log:       log,
		UploadDir: uploadDir,
		StaticDir: cfg.StaticDir,
	})

	if err := server.Run(ctx, ":"+cfg.Port, r, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

// newResumeStore prefers the S3 bucket; otherwise resumes go to disk and
// the returned dir must be served by the router.
func newResumeStore(ctx context.Context, cfg config.Uploads, log *logger.Logger) (resumes.Store, string) {
	if cfg.S3Bucket != "" {
		s3Store, err := resumes.NewS3Store(ctx, resumes.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init s3 resume store")
		}
		log.Info().Str("bucket", cfg.S3Bucket).Msg("storing resumes in s3")
		return s3Store, ""
	}

	disk, err := resumes.NewDiskStore(cfg.Dir, server.UploadsPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init resume dir")
	}
	return disk, cfg.Dir
}
