package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Ramonpr/pelada-stat/models"

	"github.com/gin-gonic/gin"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        filepath.Join(t.TempDir(), "test.db"),
		DriverName: "sqlite",
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	db.Exec("PRAGMA foreign_keys = ON;")

	if err := db.AutoMigrate(&models.Player{}, &models.Match{}, &models.Statistic{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../templates/*")

	r.GET("/", MatchDay(db))
	r.POST("/", SaveMatchDay(db))
	r.GET("/players", ListPlayers(db))
	r.POST("/players", CreatePlayer(db))
	r.GET("/api/players", GetPlayersJSON(db))
	r.POST("/api/players", CreatePlayerJSON(db))
	r.GET("/api/ranking", GetRankingJSON(db))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}
