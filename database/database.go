package database

import (
	"context"
	"fmt"
	"log"

	"zen-api/config"
	"zen-api/models"
	"zen-api/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var REDIS *redis.Client

// Default seed account credentials, overridable with DEFAULT_PASSWORD
var DefaultSuperAdminPassword = "superadmin"
var DefaultAdminPassword = "admin"

// InitDB initializes the database connection, migrates the models and populates
// the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Migrate runs AutoMigrate for every model, in dependency order
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserRanking{},
		&models.User{},
		&models.QuizCategory{},
		&models.ChallengeType{},
		&models.Quiz{},
		&models.QuizResult{},
		&models.UserProgress{},
		&models.QuizAttempt{},
		&models.CodeSnippet{},
		&models.CommunityPost{},
		&models.CommunityLike{},
		&models.CommunityReply{},
	)
}

// InitRedis initializes the Redis client used for caching and resolved sessions
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
		DB:       0,
	})

	if err := REDIS.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unavailable, caching disabled: %v", err)
	}
}

// Populate populates the database with default values if needed
func Populate() {
	seedRankings()
	seedCategories()
	seedAdminAccounts()
}

// seedRankings creates the point tiers when none exist
func seedRankings() {
	var count int64
	DB.Model(&models.UserRanking{}).Count(&count)
	if count > 0 {
		return
	}

	maxBeginner, maxIntermediate, maxAdvanced := 99, 299, 599
	rankings := []models.UserRanking{
		{RankName: "Beginner", MinPoints: 0, MaxPoints: &maxBeginner},
		{RankName: "Intermediate", MinPoints: 100, MaxPoints: &maxIntermediate},
		{RankName: "Advanced", MinPoints: 300, MaxPoints: &maxAdvanced},
		{RankName: "Expert", MinPoints: 600, MaxPoints: nil},
	}
	if err := DB.Create(&rankings).Error; err != nil {
		log.Printf("Failed to seed rankings: %v", err)
		return
	}
	log.Println("Default rankings created")
}

// seedCategories creates the quiz categories and their challenge types when none exist
func seedCategories() {
	var count int64
	DB.Model(&models.QuizCategory{}).Count(&count)
	if count > 0 {
		return
	}

	for _, name := range []string{"HTML", "CSS", "JS", "Advanced JS"} {
		category := models.QuizCategory{Name: name}
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to seed category %s: %v", name, err)
			continue
		}
		types := []models.ChallengeType{
			{Name: "Multiple Choice", Description: "Pick the correct answer", QuizCategoryID: category.ID},
			{Name: "Code Challenge", Description: "Fix or complete a snippet", QuizCategoryID: category.ID},
		}
		if err := DB.Create(&types).Error; err != nil {
			log.Printf("Failed to seed challenge types for %s: %v", name, err)
		}
	}
	log.Println("Default quiz categories created")
}

// seedAdminAccounts creates the super admin and admin users when no user exists
func seedAdminAccounts() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	superPassword := DefaultSuperAdminPassword
	adminPassword := DefaultAdminPassword
	if config.DefaultPassword != "" {
		superPassword = config.DefaultPassword
		adminPassword = config.DefaultPassword
	}

	superHash, err := utils.HashPassword(superPassword)
	if err != nil {
		log.Fatal("failed to hash default password: ", err)
	}
	adminHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("failed to hash default password: ", err)
	}

	var beginner models.UserRanking
	var rankID *uint
	if err := DB.Where("rank_name = ?", "Beginner").First(&beginner).Error; err == nil {
		rankID = &beginner.ID
	}

	accounts := []models.User{
		{
			Username:     "superadmin",
			Email:        "superadmin@zenquiz.app",
			PasswordHash: superHash,
			UniqueInfo:   "Super Admin Account",
			AdminLevel:   models.AdminLevelSuperAdmin,
			RankID:       rankID,
		},
		{
			Username:     "admin",
			Email:        "admin@zenquiz.app",
			PasswordHash: adminHash,
			UniqueInfo:   "Admin Account",
			AdminLevel:   models.AdminLevelAdmin,
			RankID:       rankID,
		},
	}
	if err := DB.Create(&accounts).Error; err != nil {
		log.Printf("Failed to seed admin accounts: %v", err)
		return
	}
	log.Println("Default admin accounts created")
}
