package pins

import (
	"time"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/db"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/utils"
)

type session struct {
	SessionID string
	UserID    string
	ExpiresAt time.Time
}

func (session) TableName() string { return "app_auth.sessions" }

// SessionInfo satisfies middleware.SessionFetcher for this feature's routes.
type SessionInfo struct{}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	var s session
	if err := db.DB.First(&s, "session_id = ?", id).Error; err != nil {
		return utils.SessionData{}, err
	}
	return utils.SessionData{
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
	}, nil
}
