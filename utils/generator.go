package utils

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/mukundi-dev/mentor_bridge/models"
)

const roomCodeLength = 10
const roomCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateUniqueRoomCode returns a meeting room code that no other meeting
// uses yet. Checked inside the caller's transaction so two concurrent
// acceptances cannot claim the same code.
func GenerateUniqueRoomCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, roomCodeLength)
		for i := range b {
			b[i] = roomCodeAlphabet[seededRand.Intn(len(roomCodeAlphabet))]
		}
		code := string(b)

		var meeting models.Meeting
		err := tx.Where("room_code = ?", code).First(&meeting).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
