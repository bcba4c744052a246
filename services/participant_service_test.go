package services

import (
	"errors"
	"fmt"
	"testing"

	"crickarena/models"
)

func currentCount(t *testing.T, rooms *RoomService, roomID uint) int {
	t.Helper()
	room, err := rooms.GetRoomByID(roomID)
	if err != nil {
		t.Fatalf("load room: %v", err)
	}
	return room.CurrentParticipants
}

func TestJoinIncrementsCounter(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	player := createTestUser(t, db, "player")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 4)
	svc := NewParticipantService(db)
	rooms := NewRoomService(db)

	if _, err := svc.Join(room.ID, player.ID); err != nil {
		t.Fatalf("join: %v", err)
	}
	if got := currentCount(t, rooms, room.ID); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
}

func TestJoinTwiceConflicts(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	player := createTestUser(t, db, "player")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 4)
	svc := NewParticipantService(db)
	rooms := NewRoomService(db)

	if _, err := svc.Join(room.ID, player.ID); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := svc.Join(room.ID, player.ID); !errors.Is(err, models.ErrStateConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// The failed join must not move the counter.
	if got := currentCount(t, rooms, room.ID); got != 2 {
		t.Fatalf("counter drifted on failed join: %d", got)
	}
}

func TestJoinFullRoom(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 2)
	svc := NewParticipantService(db)
	rooms := NewRoomService(db)

	second := createTestUser(t, db, "second")
	if _, err := svc.Join(room.ID, second.ID); err != nil {
		t.Fatalf("join: %v", err)
	}

	third := createTestUser(t, db, "third")
	if _, err := svc.Join(room.ID, third.ID); !errors.Is(err, models.ErrCapacity) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if got := currentCount(t, rooms, room.ID); got != 2 {
		t.Fatalf("counter drifted on refused join: %d", got)
	}
}

func TestJoinNonWaitingRoom(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	player := createTestUser(t, db, "player")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 4)
	svc := NewParticipantService(db)

	if _, err := NewRoomService(db).TransitionStatus(room.ID, models.RoomInProgress, host.ID, models.RoleUser); err != nil {
		t.Fatalf("start room: %v", err)
	}

	if _, err := svc.Join(room.ID, player.ID); !errors.Is(err, models.ErrStateConflict) {
		t.Fatalf("expected conflict joining started room, got %v", err)
	}
	if _, err := svc.Join(9999, player.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLeaveIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	player := createTestUser(t, db, "player")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 4)
	svc := NewParticipantService(db)
	rooms := NewRoomService(db)

	if _, err := svc.Join(room.ID, player.ID); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.Leave(room.ID, player.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if got := currentCount(t, rooms, room.ID); got != 1 {
		t.Fatalf("expected count 1 after leave, got %d", got)
	}

	// Second leave is a no-op and must not decrement again.
	if err := svc.Leave(room.ID, player.ID); err != nil {
		t.Fatalf("repeat leave: %v", err)
	}
	if got := currentCount(t, rooms, room.ID); got != 1 {
		t.Fatalf("counter drifted on repeat leave: %d", got)
	}
}

func TestRejoinReactivatesRow(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	player := createTestUser(t, db, "player")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 4)
	svc := NewParticipantService(db)

	first, err := svc.Join(room.ID, player.ID)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.Leave(room.ID, player.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}

	again, err := svc.Join(room.ID, player.ID)
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if again.ID != first.ID {
		t.Fatalf("rejoin should reuse the ledger row: %d vs %d", again.ID, first.ID)
	}
	if !again.IsActive || again.LeftAt != nil {
		t.Fatalf("rejoined row should be active, got %+v", again)
	}

	var rows int64
	db.Model(&models.RoomParticipant{}).Where("room_id = ?", room.ID).Count(&rows)
	if rows != 2 {
		t.Fatalf("expected 2 ledger rows (host + player), got %d", rows)
	}
}

func TestListActiveOrdering(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 10)
	svc := NewParticipantService(db)

	var users []models.User
	for i := 0; i < 3; i++ {
		u := createTestUser(t, db, fmt.Sprintf("player%d", i))
		if _, err := svc.Join(room.ID, u.ID); err != nil {
			t.Fatalf("join: %v", err)
		}
		users = append(users, u)
	}

	scores := map[uint]int{users[0].ID: 30, users[1].ID: 50, users[2].ID: 30}
	for userID, score := range scores {
		if err := svc.SetScore(db, room.ID, userID, score); err != nil {
			t.Fatalf("set score: %v", err)
		}
	}

	participants, err := svc.ListActive(room.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(participants) != 4 {
		t.Fatalf("expected 4 active participants, got %d", len(participants))
	}
	if participants[0].UserID != users[1].ID {
		t.Fatalf("highest score should lead, got user %d", participants[0].UserID)
	}
	// The two 30-point players tie; earlier join order wins.
	if participants[1].UserID != users[0].ID || participants[2].UserID != users[2].ID {
		t.Fatalf("tie should break by join order, got %d then %d", participants[1].UserID, participants[2].UserID)
	}
}

func TestSetScoreRequiresLedgerRow(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 4)
	svc := NewParticipantService(db)

	if err := svc.SetScore(db, room.ID, 9999, 10); !errors.Is(err, models.ErrStateConflict) {
		t.Fatalf("expected conflict for unknown participant, got %v", err)
	}
}

func TestAssignRanks(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	player := createTestUser(t, db, "player")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 4)
	svc := NewParticipantService(db)

	if _, err := svc.Join(room.ID, player.ID); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.SetScore(db, room.ID, player.ID, 40); err != nil {
		t.Fatalf("set score: %v", err)
	}
	if err := svc.SetScore(db, room.ID, host.ID, 20); err != nil {
		t.Fatalf("set score: %v", err)
	}

	if err := svc.AssignRanks(db, room.ID); err != nil {
		t.Fatalf("assign ranks: %v", err)
	}

	participants, err := svc.ListActive(room.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if participants[0].UserID != player.ID || participants[0].Rank == nil || *participants[0].Rank != 1 {
		t.Fatalf("expected player ranked 1, got %+v", participants[0])
	}
	if participants[1].Rank == nil || *participants[1].Rank != 2 {
		t.Fatalf("expected host ranked 2, got %+v", participants[1])
	}
}

func TestReconcileCount(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host")
	player := createTestUser(t, db, "player")
	room := createTestRoom(t, db, host.ID, models.ModeQuiz, 4)
	svc := NewParticipantService(db)

	if _, err := svc.Join(room.ID, player.ID); err != nil {
		t.Fatalf("join: %v", err)
	}

	// Simulate drift from manual intervention.
	db.Model(&models.Room{}).Where("id = ?", room.ID).UpdateColumn("current_participants", 7)

	count, err := svc.ReconcileCount(room.ID)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected true count 2, got %d", count)
	}
	if got := currentCount(t, NewRoomService(db), room.ID); got != 2 {
		t.Fatalf("counter not repaired: %d", got)
	}
}
