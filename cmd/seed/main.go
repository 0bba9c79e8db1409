// One-shot seeder for the managed data the platform cannot run without:
// the category set and an initial admin account. Safe to re-run, every
// insert is on-conflict-do-nothing.
package main

import (
	"os"
	"time"

	"github.com/diskusiapp/diskusi/model"
	"github.com/diskusiapp/diskusi/service"
	"github.com/diskusiapp/diskusi/utils"
	"github.com/diskusiapp/diskusi/utils/dotenv"
	Flag "github.com/diskusiapp/diskusi/utils/flag"
	Logger "github.com/diskusiapp/diskusi/utils/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

var seedCategories = []struct {
	Name  string
	Color string
}{
	{"Politik", "#e11d48"},
	{"Ekonomi", "#0ea5e9"},
	{"Teknologi", "#8b5cf6"},
	{"Olahraga", "#22c55e"},
	{"Hiburan", "#f59e0b"},
	{"Kesehatan", "#14b8a6"},
	{"Pendidikan", "#6366f1"},
	{"Gaya Hidup", "#ec4899"},
}

func main() {
	Flag.ParseFlags()
	Logger.InitLogger()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Logger.Log.Fatal("fail to connect to database: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	for _, c := range seedCategories {
		category := model.Category{
			Id:        uuid.New().String(),
			CreatedAt: time.Now(),
			Name:      c.Name,
			Slug:      service.Slugify(c.Name),
			Color:     c.Color,
		}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&category)
		if res.Error != nil {
			Logger.Log.Fatal("fail to seed category ", c.Name, ": ", res.Error)
		}
	}
	Logger.Log.Info("categories seeded")

	email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		Logger.Log.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skip admin seeding")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		Logger.Log.Fatal("fail to hash admin password: ", err)
	}
	admin := model.User{
		Id:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Verified:     true,
	}
	if res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin); res.Error != nil {
		Logger.Log.Fatal("fail to seed admin: ", res.Error)
	}
	Logger.Log.Info("admin seeded")
}
