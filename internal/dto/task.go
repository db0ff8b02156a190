package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Deadline parses deadline from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC. Set reports
// whether the key was present at all, so handlers can tell "omitted" from
// an explicit null (which clears the deadline).
type Deadline struct {
	Set   bool
	Value *time.Time
}

func (d *Deadline) UnmarshalJSON(data []byte) error {
	d.Set = true
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.Value = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",     // date only
		time.RFC3339,     // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano, // with nanoseconds
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// Date-only means start of that day in UTC.
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.Value = &parsed
			return nil
		}
	}
	return fmt.Errorf("deadline: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// NullableString distinguishes an omitted key (Set false) from an explicit
// null (Set true, Value nil).
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	return json.Unmarshal(data, &n.Value)
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Status      string   `json:"status"` // one of the three statuses; empty = To Do
	Deadline    Deadline `json:"deadline"`
}

// UpdateTaskRequest is a partial update: absent keys keep current values,
// explicit null on description/deadline clears them.
type UpdateTaskRequest struct {
	Title       *string        `json:"title" binding:"omitempty,min=3,max=200"`
	Description NullableString `json:"description"`
	Status      *string        `json:"status"`
	Deadline    Deadline       `json:"deadline"`
}

type TaskResponse struct {
	TaskID      int64        `json:"task_id"`
	UserID      int64        `json:"user_id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      string       `json:"status"`
	Deadline    *time.Time   `json:"deadline"`
	CreatedBy   int64        `json:"created_by"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Creator     UserResponse `json:"creator"`
}
