package domain

import "time"

// Status is the task workflow state.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// ParseStatus returns the matching Status and true, or false for anything
// unrecognized (including "all" and the empty string).
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusToDo, StatusInProgress, StatusDone:
		return Status(s), true
	}
	return "", false
}

// Sort is the list ordering. In both deadline orders tasks without a
// deadline come after every task that has one.
type Sort string

const (
	SortDefault      Sort = "" // created_at DESC
	SortDeadlineAsc  Sort = "deadline_asc"
	SortDeadlineDesc Sort = "deadline_desc"
)

// ParseSort maps a query value to a Sort; unknown values fall back to the
// default order rather than failing.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortDeadlineAsc, SortDeadlineDesc:
		return Sort(s)
	}
	return SortDefault
}

// TaskFilter narrows and orders a task listing. Status nil means no filter.
type TaskFilter struct {
	Status *Status
	Sort   Sort
}

// OptionalString is a tri-state update field: absent (Set false), explicit
// null (Set true, Value nil) or a value.
type OptionalString struct {
	Set   bool
	Value *string
}

// OptionalTime mirrors OptionalString for timestamps.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// TaskPatch is a partial update. Nil / unset fields keep their previous
// values; Description and Deadline can be cleared with an explicit null.
type TaskPatch struct {
	Title       *string
	Description OptionalString
	Status      *Status
	Deadline    OptionalTime
}

// Task belongs to exactly one owner. CreatedBy always equals UserID today;
// kept as a separate column for future delegation.
type Task struct {
	ID          int64
	UserID      int64
	CreatedBy   int64
	Title       string
	Description *string
	Status      Status
	Deadline    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
