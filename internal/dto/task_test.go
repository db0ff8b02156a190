package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDeadlineDateOnly(t *testing.T) {
	var req CreateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"Setup CI/CD","deadline":"2026-02-19"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !req.Deadline.Set || req.Deadline.Value == nil {
		t.Fatal("deadline not set")
	}
	want := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)
	if !req.Deadline.Value.Equal(want) {
		t.Fatalf("expected %v, got %v", want, *req.Deadline.Value)
	}
}

func TestDeadlineRFC3339(t *testing.T) {
	var req CreateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"abc","deadline":"2026-02-19T15:04:05Z"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if req.Deadline.Value == nil || req.Deadline.Value.Hour() != 15 {
		t.Fatalf("unexpected deadline: %v", req.Deadline.Value)
	}
}

func TestDeadlineInvalid(t *testing.T) {
	var req CreateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"abc","deadline":"next tuesday"}`), &req); err == nil {
		t.Fatal("expected error for unparsable deadline")
	}
}

func TestUpdateRequestAbsentVsNull(t *testing.T) {
	var absent UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"abc"}`), &absent); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if absent.Description.Set || absent.Deadline.Set {
		t.Fatal("absent keys must not read as set")
	}

	var null UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"description":null,"deadline":null}`), &null); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !null.Description.Set || null.Description.Value != nil {
		t.Fatal("explicit null description must read as set with nil value")
	}
	if !null.Deadline.Set || null.Deadline.Value != nil {
		t.Fatal("explicit null deadline must read as set with nil value")
	}

	var value UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"description":"notes"}`), &value); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !value.Description.Set || value.Description.Value == nil || *value.Description.Value != "notes" {
		t.Fatalf("unexpected description: %+v", value.Description)
	}
}
