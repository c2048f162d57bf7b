package model

import "time"

// Timestamps is embedded by every persisted record. The columns are written by
// the repositories, not by GORM's auto time tracking.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// StampCreated sets both creation and update times.
func (t *Timestamps) StampCreated(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// StampPatch adds updated_at to a column patch.
func StampPatch(patch map[string]any, now time.Time) map[string]any {
	out := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		out[k] = v
	}
	out["updated_at"] = now
	return out
}
