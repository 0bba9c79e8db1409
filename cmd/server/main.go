package main

import (
	"os"

	"github.com/diskusiapp/diskusi/ai"
	"github.com/diskusiapp/diskusi/server"
	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/diskusiapp/diskusi/service"
	"github.com/diskusiapp/diskusi/utils"
	"github.com/diskusiapp/diskusi/utils/dotenv"
	Flag "github.com/diskusiapp/diskusi/utils/flag"
	Logger "github.com/diskusiapp/diskusi/utils/log"
)

func main() {
	Flag.ParseFlags()
	Logger.InitLogger()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	middlewares.Setup()

	db, err := utils.GetDBConnection()
	if err != nil {
		Logger.Log.Fatal("fail to connect to database: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	var redis *utils.RedisClient
	if os.Getenv("REDIS_HOST") != "" {
		redis = utils.GetRedisClient()
	}

	svc := service.New(db, redis, ai.NewGeminiClientFromEnv())
	router := server.NewRouter(svc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	Logger.Log.Info("api server starts up")
	router.Run(":" + port)
}
