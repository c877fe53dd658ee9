package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"projecthub/config"
	"projecthub/models"
	"projecthub/utils"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return New(db, utils.NewBcryptHasher())
}

func payload(t *testing.T, fields map[string]interface{}) Payload {
	t.Helper()
	p := NewPayload()
	for key, value := range fields {
		raw, err := json.Marshal(value)
		require.NoError(t, err)
		p.Set(key, raw)
	}
	return p
}

func seedUser(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	user, err := s.CreateUser(payload(t, map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
	}))
	require.NoError(t, err)
	return user
}

func seedTeam(t *testing.T, s *Store, name string, userID uint) *models.Team {
	t.Helper()
	team, err := s.CreateTeam(payload(t, map[string]interface{}{
		"name":               name,
		"description":        "a team",
		"created_by_user_id": userID,
	}))
	require.NoError(t, err)
	return team
}

func seedProject(t *testing.T, s *Store, title string, teamID uint) *models.Project {
	t.Helper()
	project, err := s.CreateProject(payload(t, map[string]interface{}{
		"title":       title,
		"description": "a project",
		"status":      "active",
		"start_date":  "2026-01-01",
		"end_date":    "2026-06-01",
		"team_id":     teamID,
	}))
	require.NoError(t, err)
	return project
}

func seedTask(t *testing.T, s *Store, title string, userID, projectID uint) *models.Task {
	t.Helper()
	task, err := s.CreateTask(payload(t, map[string]interface{}{
		"title":               title,
		"description":         "a task",
		"status":              "open",
		"due_date":            "2026-03-01",
		"priority":            2,
		"assigned_to_user_id": userID,
		"project_id":          projectID,
	}))
	require.NoError(t, err)
	return task
}

func TestCreateUserDefaultsAndHash(t *testing.T) {
	s := newTestStore(t)

	user := seedUser(t, s, "ada")
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.True(t, utils.NewBcryptHasher().Verify(user.PasswordHash, "hunter22"))
}

func TestCreateUserMissingFields(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser(payload(t, map[string]interface{}{
		"email":    "ada@example.com",
		"password": "hunter22",
	}))
	require.EqualError(t, err, "User must have a username")

	_, err = s.CreateUser(payload(t, map[string]interface{}{
		"username": "ada",
		"email":    "ada@example.com",
	}))
	require.EqualError(t, err, "User must have a password")

	_, err = s.CreateUser(payload(t, map[string]interface{}{
		"username": "ada",
		"email":    "not-an-email",
		"password": "hunter22",
	}))
	require.EqualError(t, err, "User failed simple email validation")

	// Nothing persisted on any rejected create.
	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUsernameUniqueness(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "ada")

	_, err := s.CreateUser(payload(t, map[string]interface{}{
		"username": "ada",
		"email":    "other@example.com",
		"password": "hunter22",
	}))
	require.EqualError(t, err, "User Username must be unique")
}

func TestUniquenessExcludesOwnRow(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")
	team := seedTeam(t, s, "platform", user.ID)

	// Re-asserting the row's own value is not a collision.
	_, err := s.PatchTeam(team.ID, payload(t, map[string]interface{}{
		"name": "platform",
	}))
	require.NoError(t, err)

	seedTeam(t, s, "infra", user.ID)
	_, err = s.PatchTeam(team.ID, payload(t, map[string]interface{}{
		"name": "infra",
	}))
	require.EqualError(t, err, "Team Name must be unique")
}

func TestDescriptionLengthBoundary(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")

	exactly250 := strings.Repeat("x", 250)
	_, err := s.CreateTeam(payload(t, map[string]interface{}{
		"name":               "fits",
		"description":        exactly250,
		"created_by_user_id": user.ID,
	}))
	require.NoError(t, err)

	_, err = s.CreateTeam(payload(t, map[string]interface{}{
		"name":               "overflows",
		"description":        exactly250 + "x",
		"created_by_user_id": user.ID,
	}))
	require.EqualError(t, err, "Team Description must be less than or equal to 250 characters long.")
}

func TestReferentialExistence(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")

	_, err := s.CreateTeam(payload(t, map[string]interface{}{
		"name":               "orphans",
		"description":        "no such user",
		"created_by_user_id": 9999,
	}))
	require.EqualError(t, err, "Team User must exist.")

	team := seedTeam(t, s, "platform", user.ID)
	_, err = s.CreateProject(payload(t, map[string]interface{}{
		"title":       "ghost",
		"description": "bad team ref",
		"status":      "active",
		"start_date":  "2026-01-01",
		"end_date":    "2026-06-01",
		"team_id":     team.ID + 1000,
	}))
	require.EqualError(t, err, "Project Team must exist.")
}

func TestTaskPriorityRules(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")
	team := seedTeam(t, s, "platform", user.ID)
	project := seedProject(t, s, "apollo", team.ID)

	base := map[string]interface{}{
		"title":               "triage",
		"description":         "a task",
		"status":              "open",
		"due_date":            "2026-03-01",
		"assigned_to_user_id": user.ID,
		"project_id":          project.ID,
	}

	base["priority"] = 0
	_, err := s.CreateTask(payload(t, base))
	require.EqualError(t, err, "Task must have an priority.")

	base["priority"] = -3
	_, err = s.CreateTask(payload(t, base))
	require.EqualError(t, err, "Task Priority must be above 0.")

	base["priority"] = 1
	_, err = s.CreateTask(payload(t, base))
	require.NoError(t, err)
}

func TestFileSizeRules(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")
	team := seedTeam(t, s, "platform", user.ID)
	project := seedProject(t, s, "apollo", team.ID)

	base := map[string]interface{}{
		"filename":            "report.pdf",
		"file_type":           "pdf",
		"uploaded_by_user_id": user.ID,
		"project_id":          project.ID,
	}

	base["size"] = 0
	_, err := s.CreateFile(payload(t, base))
	require.EqualError(t, err, "File must have a File Size.")

	base["size"] = 1
	_, err = s.CreateFile(payload(t, base))
	require.EqualError(t, err, "File Size cannot be 0.")

	base["size"] = 2
	file, err := s.CreateFile(payload(t, base))
	require.NoError(t, err)
	assert.Equal(t, 2, file.Size)
}

func TestChatMessageValidation(t *testing.T) {
	s := newTestStore(t)
	sender := seedUser(t, s, "ada")
	receiver := seedUser(t, s, "grace")

	_, err := s.CreateChatMessage(payload(t, map[string]interface{}{
		"sender_user_id":   sender.ID,
		"receiver_user_id": receiver.ID,
	}))
	require.EqualError(t, err, "Chat Message must have Message Text")

	_, err = s.CreateChatMessage(payload(t, map[string]interface{}{
		"message_text":     "hello",
		"sender_user_id":   sender.ID,
		"receiver_user_id": receiver.ID + 1000,
	}))
	require.EqualError(t, err, "Chat Message Receiving User must exist.")

	message, err := s.CreateChatMessage(payload(t, map[string]interface{}{
		"message_text":     "hello",
		"sender_user_id":   sender.ID,
		"receiver_user_id": receiver.ID,
	}))
	require.NoError(t, err)
	assert.Equal(t, "hello", message.MessageText)
}

func TestNumericStringCoercion(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")

	p := NewPayload()
	p.Set("name", json.RawMessage(`"platform"`))
	p.Set("description", json.RawMessage(`"a team"`))
	p.Set("created_by_user_id", json.RawMessage(fmt.Sprintf("%q", fmt.Sprint(user.ID))))

	team, err := s.CreateTeam(p)
	require.NoError(t, err)
	assert.Equal(t, user.ID, team.CreatedByUserID)
}

func TestPatchSingleFieldIsolation(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")
	team := seedTeam(t, s, "platform", user.ID)

	patched, err := s.PatchTeam(team.ID, payload(t, map[string]interface{}{
		"description": "renovated",
	}))
	require.NoError(t, err)
	assert.Equal(t, "platform", patched.Name)
	assert.Equal(t, "renovated", patched.Description)
	assert.Equal(t, user.ID, patched.CreatedByUserID)
}

func TestPatchUnknownKeysIgnored(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")
	team := seedTeam(t, s, "platform", user.ID)

	patched, err := s.PatchTeam(team.ID, payload(t, map[string]interface{}{
		"nonsense": "value",
	}))
	require.NoError(t, err)
	assert.Equal(t, "platform", patched.Name)
}

func TestParsePayloadKeepsWireOrder(t *testing.T) {
	p, err := ParsePayload([]byte(`{"b":1,"a":2,"c":{"nested":true},"b":3}`))
	require.NoError(t, err)

	// Repeated keys keep their first position and the last value.
	assert.Equal(t, []string{"b", "a", "c"}, p.Keys())
	raw, ok := p.Get("b")
	require.True(t, ok)
	assert.Equal(t, json.RawMessage("3"), raw)

	_, err = ParsePayload([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestPatchAppliesFieldsInWireOrder(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")
	team := seedTeam(t, s, "platform", user.ID)

	// Both fields fail validation; the error reported is the one for the
	// field that came first on the wire, not first in the struct.
	p, err := ParsePayload([]byte(`{"created_by_user_id":9999,"name":null}`))
	require.NoError(t, err)
	_, err = s.PatchTeam(team.ID, p)
	require.EqualError(t, err, "Team User must exist.")

	p, err = ParsePayload([]byte(`{"name":null,"created_by_user_id":9999}`))
	require.NoError(t, err)
	_, err = s.PatchTeam(team.ID, p)
	require.EqualError(t, err, "Team must have a Name")
}

func TestPatchRejectionLeavesRowUntouched(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")
	team := seedTeam(t, s, "platform", user.ID)

	_, err := s.PatchTeam(team.ID, payload(t, map[string]interface{}{
		"description":        "short-lived",
		"created_by_user_id": 9999,
	}))
	require.EqualError(t, err, "Team User must exist.")

	fresh, err := s.GetTeam(team.ID)
	require.NoError(t, err)
	assert.Equal(t, "a team", fresh.Description)
}

func TestPatchPasswordRehash(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "ada")
	oldHash := user.PasswordHash

	patched, err := s.PatchUser(user.ID, payload(t, map[string]interface{}{
		"password": "new-secret",
	}))
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, patched.PasswordHash)
	assert.True(t, utils.NewBcryptHasher().Verify(patched.PasswordHash, "new-secret"))
}

func TestGetMissingRecord(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(42)
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = s.DeleteTeam(42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestStore(t)
	owner := seedUser(t, s, "ada")
	other := seedUser(t, s, "grace")

	team := seedTeam(t, s, "platform", owner.ID)
	project := seedProject(t, s, "apollo", team.ID)
	task := seedTask(t, s, "triage", owner.ID, project.ID)

	file, err := s.CreateFile(payload(t, map[string]interface{}{
		"filename":            "report.pdf",
		"file_type":           "pdf",
		"size":                5,
		"uploaded_by_user_id": owner.ID,
		"project_id":          project.ID,
	}))
	require.NoError(t, err)

	calendar, err := s.CreateCalendar(payload(t, map[string]interface{}{
		"event_name":         "standup",
		"event_description":  "daily",
		"event_date":         "2026-02-01",
		"created_by_user_id": owner.ID,
	}))
	require.NoError(t, err)

	sent, err := s.CreateChatMessage(payload(t, map[string]interface{}{
		"message_text":     "hi",
		"sender_user_id":   owner.ID,
		"receiver_user_id": other.ID,
	}))
	require.NoError(t, err)
	received, err := s.CreateChatMessage(payload(t, map[string]interface{}{
		"message_text":     "hello back",
		"sender_user_id":   other.ID,
		"receiver_user_id": owner.ID,
	}))
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(owner.ID))

	_, err = s.GetUser(owner.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetTeam(team.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetProject(project.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetTask(task.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetFile(file.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetCalendar(calendar.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetChatMessage(sent.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetChatMessage(received.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// The correspondent survives.
	_, err = s.GetUser(other.ID)
	require.NoError(t, err)
}

func TestDeleteTeamCascades(t *testing.T) {
	s := newTestStore(t)
	owner := seedUser(t, s, "ada")
	team := seedTeam(t, s, "platform", owner.ID)
	project := seedProject(t, s, "apollo", team.ID)
	task := seedTask(t, s, "triage", owner.ID, project.ID)

	require.NoError(t, s.DeleteTeam(team.ID))

	_, err := s.GetProject(project.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetTask(task.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// The owning user is untouched.
	_, err = s.GetUser(owner.ID)
	require.NoError(t, err)
}

func TestChatMessagesAfter(t *testing.T) {
	s := newTestStore(t)
	sender := seedUser(t, s, "ada")
	receiver := seedUser(t, s, "grace")

	var ids []uint
	for i := 0; i < 3; i++ {
		message, err := s.CreateChatMessage(payload(t, map[string]interface{}{
			"message_text":     fmt.Sprintf("message %d", i),
			"sender_user_id":   sender.ID,
			"receiver_user_id": receiver.ID,
		}))
		require.NoError(t, err)
		ids = append(ids, message.ID)
	}

	last, err := s.LastChatMessageID()
	require.NoError(t, err)
	assert.Equal(t, ids[2], last)

	after, err := s.ListChatMessagesAfter(ids[0])
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, ids[1], after[0].ID)
	assert.Equal(t, ids[2], after[1].ID)
}
