package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shikshasync_backend/internals/configs"
)

// DB: database tujuan (hasil sinkronisasi).
// SourceDB: database sumber, read-only, hanya dipakai jalur backfill.
// Nil kalau SOURCE_DB_* tidak diset.
var (
	DB       *gorm.DB
	SourceDB *gorm.DB
)

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL tujuan...")

	// Catatan: kalau pakai PgBouncer, arahkan host/port ke PgBouncer dan
	// biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=shikshasync&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		TranslateError: true, // supaya duplicate key jadi gorm.ErrDuplicatedKey
		Logger:         configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB tujuan: %v", err)
	}
	DB = db
	log.Println("✅ DB tujuan connected.")
}

// ConnectSourceDB menyambung ke database sumber untuk backfill. Tidak
// fatal kalau env-nya kosong; endpoint backfill yang akan menolak.
func ConnectSourceDB() {
	if os.Getenv("SOURCE_DB_HOST") == "" {
		log.Println("⚠️ SOURCE_DB_HOST kosong, lewati koneksi DB sumber")
		return
	}
	log.Println("🔌 Koneksi ke PostgreSQL sumber...")

	sslmode := getenv("SOURCE_DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=shikshasync-backfill",
		os.Getenv("SOURCE_DB_USER"),
		os.Getenv("SOURCE_DB_PASSWORD"),
		os.Getenv("SOURCE_DB_HOST"),
		os.Getenv("SOURCE_DB_PORT"),
		os.Getenv("SOURCE_DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Printf("❌ Gagal konek DB sumber: %v", err)
		return
	}
	SourceDB = db
	log.Println("✅ DB sumber connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// ⚖️ Sesuaikan dengan limit Supabase/PgBouncer
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
