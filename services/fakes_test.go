package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/leewaller93/has-status-backend/models"
)

// In-memory store fakes backing the service tests.

type fakeTaskStore struct {
	tasks map[string]*models.Task
	order []string
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: map[string]*models.Task{}}
}

func (f *fakeTaskStore) seed(task models.Task) models.Task {
	task.ID = primitive.NewObjectID()
	id := task.ID.Hex()
	f.tasks[id] = &task
	f.order = append(f.order, id)
	return task
}

func (f *fakeTaskStore) all() []models.Task {
	var out []models.Task
	for _, id := range f.order {
		if task, ok := f.tasks[id]; ok {
			out = append(out, *task)
		}
	}
	return out
}

func (f *fakeTaskStore) Insert(ctx context.Context, task models.Task) (models.Task, error) {
	return f.seed(task), nil
}

func (f *fakeTaskStore) ListByClient(ctx context.Context, clientID string) ([]models.Task, error) {
	var out []models.Task
	for _, task := range f.all() {
		if task.ClientID == clientID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	task, ok := f.tasks[id]
	if !ok {
		return false, nil
	}
	for key, value := range fields {
		applyTaskField(task, key, value)
	}
	return true, nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id string) (*models.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: task", ErrNotFound)
	}
	delete(f.tasks, id)
	return task, nil
}

func (f *fakeTaskStore) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	var deleted int64
	for id, task := range f.tasks {
		if task.ClientID == clientID {
			delete(f.tasks, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeTaskStore) FindAssigned(ctx context.Context, clientID, assignee string) ([]models.Task, error) {
	var out []models.Task
	for _, task := range f.all() {
		if task.ClientID == clientID && task.AssignedTo == assignee {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) Reassign(ctx context.Context, clientID, from, to string) (int64, error) {
	var modified int64
	for _, task := range f.tasks {
		if task.ClientID == clientID && task.AssignedTo == from {
			task.AssignedTo = to
			modified++
		}
	}
	return modified, nil
}

func (f *fakeTaskStore) ReassignAll(ctx context.Context, from, to string) (int64, error) {
	var modified int64
	for _, task := range f.tasks {
		if task.AssignedTo == from {
			task.AssignedTo = to
			modified++
		}
	}
	return modified, nil
}

func (f *fakeTaskStore) SetFields(ctx context.Context, clientID string, fields map[string]interface{}, ids []string) (int64, error) {
	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}

	var modified int64
	for id, task := range f.tasks {
		if task.ClientID != clientID {
			continue
		}
		if len(idSet) > 0 && !idSet[id] {
			continue
		}
		for key, value := range fields {
			applyTaskField(task, key, value)
		}
		modified++
	}
	return modified, nil
}

func applyTaskField(task *models.Task, key string, value interface{}) {
	text, _ := value.(string)
	switch key {
	case "phase":
		task.Phase = text
	case "goal":
		task.Goal = text
	case "need":
		task.Need = text
	case "comments":
		task.Comments = text
	case "execute":
		task.Execute = text
	case "stage":
		task.Stage = text
	case "commentArea":
		task.CommentArea = text
	case "assigned_to":
		task.AssignedTo = text
	}
}

type fakeTeamStore struct {
	members map[string]*models.TeamMember
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{members: map[string]*models.TeamMember{}}
}

func (f *fakeTeamStore) seed(member models.TeamMember) models.TeamMember {
	member.ID = primitive.NewObjectID()
	f.members[member.ID.Hex()] = &member
	return member
}

func (f *fakeTeamStore) Insert(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	return f.seed(member), nil
}

func (f *fakeTeamStore) ListByClient(ctx context.Context, clientID string) ([]models.TeamMember, error) {
	var out []models.TeamMember
	for _, member := range f.members {
		if member.ClientID == clientID {
			out = append(out, *member)
		}
	}
	return out, nil
}

func (f *fakeTeamStore) Get(ctx context.Context, id string) (*models.TeamMember, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, fmt.Errorf("%w: team member", ErrNotFound)
	}
	copied := *member
	return &copied, nil
}

func (f *fakeTeamStore) GetScoped(ctx context.Context, id, clientID string) (*models.TeamMember, error) {
	member, ok := f.members[id]
	if !ok || member.ClientID != clientID {
		return nil, fmt.Errorf("%w: team member", ErrNotFound)
	}
	copied := *member
	return &copied, nil
}

func (f *fakeTeamStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.members[id]; !ok {
		return fmt.Errorf("%w: team member", ErrNotFound)
	}
	delete(f.members, id)
	return nil
}

func (f *fakeTeamStore) MarkNotWorking(ctx context.Context, id string) error {
	member, ok := f.members[id]
	if !ok {
		return fmt.Errorf("%w: team member", ErrNotFound)
	}
	member.NotWorking = true
	return nil
}

type fakeAuditStore struct {
	entries []models.AuditEntry
}

func (f *fakeAuditStore) Insert(ctx context.Context, entry models.AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditStore) List(ctx context.Context, clientID string) ([]models.AuditEntry, error) {
	var out []models.AuditEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if clientID == "" || f.entries[i].ClientID == clientID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type fakeClientStore struct {
	clients []*models.Client
}

func (f *fakeClientStore) Insert(ctx context.Context, client models.Client) (models.Client, error) {
	client.ID = primitive.NewObjectID()
	f.clients = append(f.clients, &client)
	return client, nil
}

func (f *fakeClientStore) Resolve(ctx context.Context, code string) (*models.Client, error) {
	for _, client := range f.clients {
		if client.FacCode == code {
			copied := *client
			return &copied, nil
		}
	}
	for _, client := range f.clients {
		if client.LegacyClientID == code {
			copied := *client
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: client", ErrNotFound)
}

func (f *fakeClientStore) List(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	for i := len(f.clients) - 1; i >= 0; i-- {
		out = append(out, *f.clients[i])
	}
	return out, nil
}

func (f *fakeClientStore) Update(ctx context.Context, code string, client models.Client) (*models.Client, error) {
	for _, existing := range f.clients {
		if existing.FacCode == code || existing.LegacyClientID == code {
			existing.Name = client.Name
			existing.Color = client.Color
			existing.City = client.City
			existing.State = client.State
			existing.ContactPerson = client.ContactPerson
			existing.PhoneNumber = client.PhoneNumber
			copied := *existing
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: client", ErrNotFound)
}

func (f *fakeClientStore) Delete(ctx context.Context, code string) error {
	for i, existing := range f.clients {
		if existing.FacCode == code || existing.LegacyClientID == code {
			f.clients = append(f.clients[:i], f.clients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: client", ErrNotFound)
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendInvite(to, username, org string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}
