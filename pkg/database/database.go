package database

import (
	"eduflow_backend/internal/config"
	"eduflow_backend/internal/model"
	"fmt"
	"log"

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

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCourses(db)

	return db, nil
}

// Migrate creates or updates the schema for every model. Shared with the
// test suite, which runs it against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseModule{},
		&model.Lesson{},
		&model.Enrollment{},
		&model.Certificate{},
		&model.ChatHistory{},
	)
}

// seedCourses inserts a starter catalog on an empty database.
func seedCourses(db *gorm.DB) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Course{
		{
			Title:       "Introduction to Web Development",
			Description: "HTML, CSS and the basics of building pages for the browser.",
			Instructor:  "Sarah Johnson",
			Category:    "web",
			Level:       "beginner",
			Published:   true,
		},
		{
			Title:       "JavaScript Fundamentals",
			Description: "Variables, functions, the DOM and asynchronous code.",
			Instructor:  "David Kim",
			Category:    "web",
			Level:       "beginner",
			Published:   true,
		},
		{
			Title:       "Data Structures in Practice",
			Description: "Arrays, maps, trees and when to reach for each.",
			Instructor:  "Maria Lopez",
			Category:    "cs",
			Level:       "intermediate",
			Published:   true,
		},
	}
	for i := range defaults {
		db.Create(&defaults[i])
	}
}
