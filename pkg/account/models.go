package account

import (
	"encoding/json"
	"fmt"
	"time"
)

// PermissionLevel is a closed role classification with the total order
// user < admin. The database stores the lowercase form, the wire carries
// the uppercase form ("USER"/"ADMIN").
type PermissionLevel string

const (
	PermissionLevelUser  PermissionLevel = "user"
	PermissionLevelAdmin PermissionLevel = "admin"
)

var levelRank = map[PermissionLevel]int{
	PermissionLevelUser:  1,
	PermissionLevelAdmin: 2,
}

// Valid reports whether l is one of the known levels
func (l PermissionLevel) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// Satisfies reports whether l grants at least the min level
func (l PermissionLevel) Satisfies(min PermissionLevel) bool {
	return levelRank[l] >= levelRank[min]
}

func (l PermissionLevel) MarshalJSON() ([]byte, error) {
	switch l {
	case PermissionLevelUser:
		return json.Marshal("USER")
	case PermissionLevelAdmin:
		return json.Marshal("ADMIN")
	}
	return nil, fmt.Errorf("unknown permission level: %q", string(l))
}

func (l *PermissionLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "USER":
		*l = PermissionLevelUser
	case "ADMIN":
		*l = PermissionLevelAdmin
	default:
		return fmt.Errorf("unknown permission level: %q", s)
	}
	return nil
}

// Account represents an account row. DeletedAt marks soft deletion: a
// deleted account persists but never lists, reads or resolves again.
type Account struct {
	ID              int32           `json:"id"`
	Email           string          `json:"email"`
	PermissionLevel PermissionLevel `json:"permissionLevel"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	DeletedAt       *time.Time      `json:"deletedAt"`
}
