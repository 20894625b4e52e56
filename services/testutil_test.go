package services

import (
	"fmt"
	"testing"

	"github.com/icedmoch/doorsmashorpass/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database private to the calling test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{}, &entity.FoodItem{}, &entity.MealEntry{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Role: "student"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return &u
}

func seedOrder(t *testing.T, db *gorm.DB, o *entity.Order) *entity.Order {
	t.Helper()
	if o.Status == "" {
		o.Status = entity.StatusPending
	}
	if o.DeliveryLocation == "" {
		o.DeliveryLocation = "West Dorm Lobby"
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

// recordingPublisher captures order events for assertions.
type recordingPublisher struct {
	events []OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(evt OrderEvent) {
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) last(t *testing.T) OrderEvent {
	t.Helper()
	if len(p.events) == 0 {
		t.Fatal("no events published")
	}
	return p.events[len(p.events)-1]
}
