package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	config "github.com/drivelink/driving_school/configs"
	"github.com/drivelink/driving_school/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Read cache for instructor calendars. One key per instructor holding all
// explicit slot rows; SetAvailability deletes the key on every flag write,
// so an instructor always reads their own calendar writes. Bookings never
// touch explicit slot rows and bypass this cache entirely. Redis is
// optional: with REDIS_ADDR unset every lookup is a miss and reads fall
// through to Postgres.

var client *redis.Client

const slotTTL = 5 * time.Minute

func Init() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set, availability cache disabled")
		return
	}

	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		log.Printf("🔥 Failed to ping Redis, availability cache disabled: %v", err)
		return
	}

	client = c
	log.Println("✅ Availability cache connected")
}

func slotKey(instructorID uuid.UUID) string {
	return fmt.Sprintf("availability:%s", instructorID)
}

func GetInstructorSlots(instructorID uuid.UUID) ([]models.AvailabilitySlot, bool) {
	if client == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := client.Get(ctx, slotKey(instructorID)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []models.AvailabilitySlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func SetInstructorSlots(instructorID uuid.UUID, slots []models.AvailabilitySlot) {
	if client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Set(ctx, slotKey(instructorID), raw, slotTTL).Err(); err != nil {
		log.Printf("Failed to cache availability for %s: %v", instructorID, err)
	}
}

func InvalidateInstructor(instructorID uuid.UUID) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Del(ctx, slotKey(instructorID)).Err(); err != nil {
		log.Printf("Failed to invalidate availability for %s: %v", instructorID, err)
	}
}

func Close() {
	if client != nil {
		client.Close()
	}
}
