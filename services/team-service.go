package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/sony/gobreaker"

	"github.com/leewaller93/has-status-backend/logging"
	"github.com/leewaller93/has-status-backend/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InviteMailer delivers the invite notification for a newly added member.
type InviteMailer interface {
	SendInvite(to, username, org string) error
}

// TeamService owns the team collection and the reassignment workflow that
// keeps Task.assigned_to consistent with it. The assignee is a display name,
// not an id, so every member removal has to repoint matching tasks first.
type TeamService struct {
	team    TeamStore
	tasks   TaskStore
	audit   *AuditService
	mailer  InviteMailer
	breaker *gobreaker.CircuitBreaker
}

func NewTeamService(team TeamStore, tasks TaskStore, audit *AuditService, mailer InviteMailer, breaker *gobreaker.CircuitBreaker) *TeamService {
	return &TeamService{
		team:    team,
		tasks:   tasks,
		audit:   audit,
		mailer:  mailer,
		breaker: breaker,
	}
}

func (s *TeamService) ListByClient(ctx context.Context, clientID string) ([]models.TeamMember, error) {
	return s.team.ListByClient(ctx, clientID)
}

// InviteMember validates and inserts a new member, then sends the invite
// email best-effort through the circuit breaker. Mail delivery never gates
// membership: a failed send is logged and the invite still succeeds.
func (s *TeamService) InviteMember(ctx context.Context, clientID, username, email, org string) (models.TeamMember, error) {
	if username == "" || !emailPattern.MatchString(email) {
		return models.TeamMember{}, fmt.Errorf("%w: invalid username or email", ErrBadRequest)
	}
	if clientID == "" {
		clientID = models.DefaultClientID
	}
	if org == "" {
		org = models.DefaultOrg
	}

	member, err := s.team.Insert(ctx, models.TeamMember{
		ClientID: clientID,
		Username: username,
		Email:    email,
		Org:      org,
	})
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("failed to add team member: %w", err)
	}

	if s.mailer != nil && s.breaker != nil {
		if _, err := s.breaker.Execute(func() (interface{}, error) {
			return nil, s.mailer.SendInvite(member.Email, member.Username, member.Org)
		}); err != nil {
			logging.Logger.Warnf("Event ID: INVITE_EMAIL_FAILED, Description: Invite email to %s was not sent: %v", member.Email, err)
		}
	}

	return member, nil
}

// RemoveResult reports what a completed member deletion did.
type RemoveResult struct {
	ReassignedTasks int64  `json:"reassignedTasks"`
	ReassignedTo    string `json:"reassignedTo,omitempty"`
}

// RemoveTeamMember deletes a member, blocking while tasks still reference
// the member's display name unless a reassignment target is supplied. The
// sequence (check, reassign, delete, audit) is not transactional; concurrent
// requests against the same member can race.
func (s *TeamService) RemoveTeamMember(ctx context.Context, clientID, memberID, reassignTo, performedBy string) (RemoveResult, error) {
	member, err := s.team.GetScoped(ctx, memberID, clientID)
	if err != nil {
		return RemoveResult{}, err
	}

	assigned, err := s.tasks.FindAssigned(ctx, clientID, member.Username)
	if err != nil {
		return RemoveResult{}, fmt.Errorf("failed to check assigned tasks: %w", err)
	}

	if len(assigned) > 0 && reassignTo == "" {
		blocked := &ReassignmentRequiredError{MemberName: member.Username}
		for _, task := range assigned {
			blocked.AssignedTasks = append(blocked.AssignedTasks, AssignedTask{
				TaskID:   task.ID.Hex(),
				TaskName: task.Goal,
				Stage:    task.Stage,
			})
		}
		return RemoveResult{}, blocked
	}

	var reassigned int64
	if len(assigned) > 0 {
		reassigned, err = s.tasks.Reassign(ctx, clientID, member.Username, reassignTo)
		if err != nil {
			return RemoveResult{}, fmt.Errorf("failed to reassign tasks: %w", err)
		}
	}

	if err := s.team.Delete(ctx, memberID); err != nil {
		return RemoveResult{}, fmt.Errorf("failed to delete team member: %w", err)
	}

	details := "No tasks to reassign"
	if len(assigned) > 0 {
		details = fmt.Sprintf("Tasks reassigned to: %s", reassignTo)
	}
	if err := s.audit.Record(ctx, clientID, models.ActionDeleteTeamMember, memberID, member.Username, details, performedBy); err != nil {
		return RemoveResult{}, err
	}

	return RemoveResult{ReassignedTasks: reassigned, ReassignedTo: reassignTo}, nil
}

// DeactivateTeamMember reassigns every task currently assigned to the member
// and flips not_working without deleting the record. Unlike deletion this
// never blocks: deactivation is reversible, so it defaults to permissive.
// The member is resolved by id alone and tasks are matched by assignee name
// across clients, and reassignTo is not checked against the team collection.
func (s *TeamService) DeactivateTeamMember(ctx context.Context, memberID, reassignTo string) error {
	member, err := s.team.Get(ctx, memberID)
	if err != nil {
		return err
	}

	if reassignTo == "" {
		reassignTo = models.DefaultAssignee
	}

	if _, err := s.tasks.ReassignAll(ctx, member.Username, reassignTo); err != nil {
		return fmt.Errorf("failed to reassign tasks: %w", err)
	}

	if err := s.team.MarkNotWorking(ctx, memberID); err != nil {
		return fmt.Errorf("failed to mark member as not working: %w", err)
	}

	return nil
}
