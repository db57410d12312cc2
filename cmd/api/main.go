package main

import (
	"fmt"
	"net/http"

	"github.com/giodelapiedra/aegira-backend-go/internal/config"
	appHTTP "github.com/giodelapiedra/aegira-backend-go/internal/handler/http"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/cron"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/database"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/jwt"
	"github.com/giodelapiedra/aegira-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/giodelapiedra/aegira-backend-go/internal/service/auth"
	serviceCheckIn "github.com/giodelapiedra/aegira-backend-go/internal/service/checkin"
	serviceCompany "github.com/giodelapiedra/aegira-backend-go/internal/service/company"
	serviceEligibility "github.com/giodelapiedra/aegira-backend-go/internal/service/eligibility"
	serviceExemption "github.com/giodelapiedra/aegira-backend-go/internal/service/exemption"
	serviceSchedule "github.com/giodelapiedra/aegira-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	scheduleRepo := postgresql.NewTeamScheduleRepository(db)
	exemptionRepo := postgresql.NewExemptionRepository(db)
	checkInRepo := postgresql.NewCheckInRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(userRepo, jwtService)
	companyService := serviceCompany.NewCompanyService(companyRepo)
	scheduleService := serviceSchedule.NewTeamScheduleService(scheduleRepo)
	exemptionService := serviceExemption.NewExemptionService(exemptionRepo)
	eligibilityService := serviceEligibility.NewEligibilityService(
		companyRepo,
		scheduleRepo,
		exemptionRepo,
		checkInRepo,
	)
	checkInService := serviceCheckIn.NewCheckInService(
		db,
		checkInRepo,
		companyRepo,
		scheduleRepo,
		eligibilityService,
	)

	authHandler := appHTTP.NewAuthHandler(authService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	scheduleHandler := appHTTP.NewTeamScheduleHandler(scheduleService)
	exemptionHandler := appHTTP.NewExemptionHandler(exemptionService)
	checkInHandler := appHTTP.NewCheckInHandler(checkInService)
	eligibilityHandler := appHTTP.NewEligibilityHandler(eligibilityService)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		companyHandler,
		scheduleHandler,
		exemptionHandler,
		checkInHandler,
		eligibilityHandler,
	)

	scheduler := cron.NewScheduler()
	checkInJobs := cron.NewCheckInJobs(checkInRepo, companyRepo, scheduleRepo, exemptionRepo, userRepo)
	checkInJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
