package storage

import (
	"fmt"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the comment store. DATABASE_URL wins when set;
// otherwise the DSN is assembled from the discrete DB_* variables.
func ConnectDatabase() {
	db, err := gorm.Open(postgres.Open(dsnFromEnv("")), &gorm.Config{})
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	DB = db
	log.Println("Connected to database")
}

// ConnectTestingDatabase is ConnectDatabase against the TEST_DB_*
// variables, used by the handler tests.
func ConnectTestingDatabase() {
	db, err := gorm.Open(postgres.Open(dsnFromEnv("TEST_")), &gorm.Config{})
	if err != nil {
		log.Fatal("Error connecting to test database: ", err)
	}

	DB = db
	log.Println("Connected to test database")
}

func dsnFromEnv(prefix string) string {
	if dsn := os.Getenv(prefix + "DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := os.Getenv(prefix + "DB_HOST")
	port := os.Getenv(prefix + "DB_PORT")
	user := os.Getenv(prefix + "DB_USER")
	password := os.Getenv(prefix + "DB_PASSWORD")
	dbname := os.Getenv(prefix + "DB_NAME")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

var RedisClient *redis.Client

// InitRedis connects the short-lived stream cache. The cache is
// optional: with no REDIS_ADDR every page load reads the sheet live.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, stream cache disabled")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}
