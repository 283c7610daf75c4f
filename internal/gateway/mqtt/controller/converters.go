package controller

import (
	"encoding/json"
	"time"

	"locker-service/internal/entities"
)

type commandPendingMessage struct {
	CommandID string    `json:"command_id"`
	LockerID  string    `json:"locker_id"`
	Type      string    `json:"type"`
	Resi      string    `json:"resi"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessage(cmd entities.Command) ([]byte, error) {
	return json.Marshal(commandPendingMessage{
		CommandID: cmd.ID,
		LockerID:  cmd.LockerID,
		Type:      cmd.Type.String(),
		Resi:      cmd.Resi,
		Source:    cmd.Source.String(),
		CreatedAt: cmd.CreatedAt.UTC(),
	})
}

func topicFor(prefix, lockerID string) string {
	return prefix + "/" + lockerID + "/command"
}
