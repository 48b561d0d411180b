package jobs

import (
	"log"
	"time"

	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
)

const staleRequestAge = 30 * 24 * time.Hour

// SweepStaleConnectRequests removes pending requests the mentor never
// answered. Deletion matches the decline path: irreversible, and the
// mentee may simply request again.
func SweepStaleConnectRequests() {
	log.Println("Running job: SweepStaleConnectRequests...")

	cutoff := time.Now().Add(-staleRequestAge)

	result := database.DB.
		Where("status = ? AND created_at < ?", models.RequestStatusPending, cutoff).
		Delete(&models.ConnectRequest{})

	if result.Error != nil {
		log.Printf("Error sweeping stale connect requests: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Removed %d stale connect request(s).", result.RowsAffected)
	}
}
