package database

import (
	"fmt"
	"log"

	"recruiting_backend/internal/config"
	"recruiting_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.School{},
		&model.Coach{},
		&model.Interaction{},
		&model.Task{},
		&model.AthleteTask{},
		&model.Event{},
		&model.Video{},
		&model.Suggestion{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedTaskCatalog(db)

	return db, nil
}

// seedTaskCatalog inserts the default recruiting checklist on first boot.
// The critical and eligibility codes are the ones the recovery evaluator
// keys on.
func seedTaskCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.Task{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Task{
		{Code: "ncaa-registration", Title: "Register with the NCAA", Description: "Create your NCAA profile so coaches can verify your status.", Category: model.TaskCritical, Order: 1},
		{Code: "transcript-upload", Title: "Upload your transcript", Description: "Current transcript on file for academic pre-reads.", Category: model.TaskCritical, Order: 2},
		{Code: "highlight-reel", Title: "Publish a highlight reel", Description: "3-5 minutes of your best recent film.", Category: model.TaskCritical, Order: 3},
		{Code: "eligibility-center-profile", Title: "Complete your Eligibility Center profile", Description: "Required before official visits and signing.", Category: model.TaskEligibility, Order: 4},
		{Code: "target-list", Title: "Build your target school list", Description: "At least three schools across reach, match, and safety tiers.", Category: model.TaskGeneral, Order: 5},
		{Code: "intro-emails", Title: "Send introduction emails", Description: "Personalized first contact with every tier A and B coach.", Category: model.TaskGeneral, Order: 6},
		{Code: "camp-schedule", Title: "Plan your camp season", Description: "Pick the camps and showcases your target coaches attend.", Category: model.TaskGeneral, Order: 7},
	}
	for _, t := range defaults {
		db.Create(&t)
	}
}
