package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leewaller93/has-status-backend/models"
)

type taskFixture struct {
	tasks   *fakeTaskStore
	audit   *fakeAuditStore
	service *TaskService
}

func newTaskFixture() *taskFixture {
	f := &taskFixture{tasks: newFakeTaskStore(), audit: &fakeAuditStore{}}
	f.service = NewTaskService(f.tasks, NewAuditService(f.audit))
	return f
}

func TestCreateDefaultsClientID(t *testing.T) {
	f := newTaskFixture()

	created, err := f.service.Create(context.Background(), models.Task{Goal: "x"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultClientID, created.ClientID)
	assert.False(t, created.ID.IsZero())
}

func TestUpdateDropsUnknownKeys(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(models.Task{ClientID: "ABC", Goal: "old", Stage: models.StageOutstanding})

	updated, err := f.service.Update(context.Background(), task.ID.Hex(), map[string]interface{}{
		"goal":  "new",
		"bogus": 42,
	})
	require.NoError(t, err)
	assert.True(t, updated)

	stored := f.tasks.tasks[task.ID.Hex()]
	assert.Equal(t, "new", stored.Goal)
	assert.Equal(t, models.StageOutstanding, stored.Stage)
}

func TestUpdateRejectsEmptyFieldSet(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(models.Task{ClientID: "ABC"})

	_, err := f.service.Update(context.Background(), task.ID.Hex(), map[string]interface{}{"bogus": 1})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDeleteRecordsAudit(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(models.Task{ClientID: "ABC", Goal: "General Ledger Review", Phase: models.StageInProcess})

	err := f.service.Delete(context.Background(), task.ID.Hex(), "ABC", "lee")
	require.NoError(t, err)

	require.Len(t, f.audit.entries, 1)
	entry := f.audit.entries[0]
	assert.Equal(t, models.ActionDeleteTask, entry.Action)
	assert.Equal(t, "General Ledger Review", entry.TargetName)
	assert.Equal(t, "Task deleted from phase: In Process", entry.Details)
	assert.Equal(t, "lee", entry.PerformedBy)
}

func TestDeleteMissingTask(t *testing.T) {
	f := newTaskFixture()

	err := f.service.Delete(context.Background(), "5f2b6f0b9d3e1a0001000000", "ABC", "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.audit.entries)
}

func TestClearDeletesOnlyClientTasks(t *testing.T) {
	f := newTaskFixture()
	f.tasks.seed(models.Task{ClientID: "ABC", Goal: "a"})
	f.tasks.seed(models.Task{ClientID: "ABC", Goal: "b"})
	f.tasks.seed(models.Task{ClientID: "XYZ", Goal: "c"})

	deleted, err := f.service.Clear(context.Background(), "ABC", "lee")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, _ := f.tasks.ListByClient(context.Background(), "XYZ")
	assert.Len(t, remaining, 1)

	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, models.ActionBulkClear, f.audit.entries[0].Action)
	assert.Equal(t, "Removed 2 tasks", f.audit.entries[0].Details)
}

func TestMassUpdateScopedToIDSet(t *testing.T) {
	f := newTaskFixture()
	t1 := f.tasks.seed(models.Task{ClientID: "ABC", Goal: "a", Stage: models.StageOutstanding, Need: "n1"})
	t2 := f.tasks.seed(models.Task{ClientID: "ABC", Goal: "b", Stage: models.StageInProcess, Need: "n2"})
	t3 := f.tasks.seed(models.Task{ClientID: "ABC", Goal: "c", Stage: models.StageInProcess})

	modified, err := f.service.MassUpdate(context.Background(), "ABC", "stage", models.StageResolved,
		[]string{t1.ID.Hex(), t2.ID.Hex()}, "lee")
	require.NoError(t, err)
	assert.Equal(t, int64(2), modified)

	assert.Equal(t, models.StageResolved, f.tasks.tasks[t1.ID.Hex()].Stage)
	assert.Equal(t, models.StageResolved, f.tasks.tasks[t2.ID.Hex()].Stage)
	assert.Equal(t, models.StageInProcess, f.tasks.tasks[t3.ID.Hex()].Stage)

	// Other fields stay untouched.
	assert.Equal(t, "n1", f.tasks.tasks[t1.ID.Hex()].Need)
	assert.Equal(t, "a", f.tasks.tasks[t1.ID.Hex()].Goal)

	require.Len(t, f.audit.entries, 1)
	entry := f.audit.entries[0]
	assert.Equal(t, models.ActionMassUpdate, entry.Action)
	assert.Contains(t, entry.Details, "2")
	assert.Contains(t, entry.Details, "stage")
}

func TestMassUpdateWholeClientWithoutIDSet(t *testing.T) {
	f := newTaskFixture()
	f.tasks.seed(models.Task{ClientID: "ABC", Stage: models.StageOutstanding})
	f.tasks.seed(models.Task{ClientID: "ABC", Stage: models.StageInProcess})
	f.tasks.seed(models.Task{ClientID: "XYZ", Stage: models.StageInProcess})

	modified, err := f.service.MassUpdate(context.Background(), "ABC", "assigned_to", "team", nil, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), modified)

	others, _ := f.tasks.ListByClient(context.Background(), "XYZ")
	require.Len(t, others, 1)
	assert.Empty(t, others[0].AssignedTo)
}

func TestMassUpdateRejectsUnknownField(t *testing.T) {
	f := newTaskFixture()

	_, err := f.service.MassUpdate(context.Background(), "ABC", "clientId", "XYZ", nil, "")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Empty(t, f.audit.entries)
}

func TestUnifiedMassUpdateRequiresAField(t *testing.T) {
	f := newTaskFixture()

	_, err := f.service.UnifiedMassUpdate(context.Background(), "ABC", UnifiedFields{}, nil, "")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Empty(t, f.audit.entries)
}

func TestUnifiedMassUpdateSetsSubset(t *testing.T) {
	f := newTaskFixture()
	task := f.tasks.seed(models.Task{ClientID: "ABC", Stage: models.StageOutstanding, AssignedTo: "Alice", Need: "keep"})

	modified, err := f.service.UnifiedMassUpdate(context.Background(), "ABC",
		UnifiedFields{Stage: models.StageResolved, AssignedTo: "Bob"}, nil, "lee")
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	stored := f.tasks.tasks[task.ID.Hex()]
	assert.Equal(t, models.StageResolved, stored.Stage)
	assert.Equal(t, "Bob", stored.AssignedTo)
	assert.Equal(t, "keep", stored.Need)

	require.Len(t, f.audit.entries, 1)
	assert.Contains(t, f.audit.entries[0].Details, "1 tasks")
}
