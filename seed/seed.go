// Package seed wipes and repopulates the demo tenant with fixture data.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/leewaller93/has-status-backend/logging"
	"github.com/leewaller93/has-status-backend/models"
	"github.com/leewaller93/has-status-backend/store"
)

var demoTeam = []models.TeamMember{
	{ClientID: models.DefaultClientID, Username: "Alice Johnson", Email: "alice.johnson@demo.com", Org: models.DefaultOrg},
	{ClientID: models.DefaultClientID, Username: "Bob Smith", Email: "bob.smith@demo.com", Org: models.DefaultOrg},
	{ClientID: models.DefaultClientID, Username: "Carol Lee", Email: "carol.lee@demo.com", Org: models.DefaultOrg},
	{ClientID: models.DefaultClientID, Username: "David Kim", Email: "david.kim@demo.com", Org: models.DefaultOrg},
}

type demoTask struct {
	goal     string
	comments string
	execute  string
}

var demoTasks = []demoTask{
	{"General Ledger Review", "Audit the hospital's existing general ledger to verify account balances, identify errors, and ensure GAAP compliance.", "One-Time"},
	{"Accrual Process Assessment", "Evaluate current accrual methods for revenue (e.g., unbilled patient services) and expenses (e.g., utilities, salaries) for accuracy and consistency.", "One-Time"},
	{"Chart of Accounts Validation", "Review and align the hospital's chart of accounts to ensure proper categorization for journal entries and financial reporting.", "One-Time"},
	{"Prior Period Entry Analysis", "Examine historical journal entries to identify recurring issues or misclassifications, preparing correcting entries as needed.", "One-Time"},
	{"Financial Statement Baseline Review", "Assess prior financial statements (balance sheet, income statement, cash flow statement) to establish a baseline for ongoing preparation and ensure compliance with GAAP and HIPAA.", "One-Time"},
	{"Revenue Accrual Entries", "Post journal entries for accrued revenue from unbilled patient services, using patient encounter data and estimated insurance reimbursements.", "Weekly"},
	{"Expense Accrual Entries", "Record accrued expenses for incurred but unpaid costs (e.g., utilities, vendor services) based on historical data or pending invoices.", "Weekly"},
	{"Cash Receipt Journal Entries", "Log journal entries for cash receipts from patients or insurers, debiting cash and crediting revenue or accounts receivable.", "Weekly"},
	{"Preliminary Journal Review", "Review weekly journal entries for correct account coding, completeness, and supporting documentation (e.g., payment records).", "Weekly"},
	{"Adjusting Entry Corrections", "Prepare and post adjusting entries to correct errors or discrepancies identified during weekly general ledger reviews.", "Weekly"},
	{"Month-End Accrual Finalization", "Finalize and post accrual entries for revenue (e.g., unbilled procedures, pending claims) and expenses (e.g., salaries, leases) to align with GAAP.", "Monthly"},
	{"Depreciation Journal Entries", "Record monthly depreciation entries for hospital assets (e.g., medical equipment, facilities) using established schedules.", "Monthly"},
	{"Prepaid Expense Amortization", "Post journal entries to amortize prepaid expenses (e.g., insurance, software licenses) over their applicable periods.", "Monthly"},
	{"Financial Statement Preparation", "Prepare monthly financial statements (balance sheet, income statement, cash flow statement) using journal entry data, ensuring accuracy and GAAP compliance.", "Monthly"},
	{"Comprehensive Ledger and Financial Review", "Conduct a detailed review of all monthly journal entries and financial statements, verifying accuracy, accrual integrity, and compliance with GAAP and HIPAA.", "Monthly"},
	{"Accrual Reversal Entries", "Post reversing entries for prior month's accruals (e.g., paid invoices, settled claims) to prevent double-counting in the ledger.", "Monthly"},
}

var stages = []string{
	models.StageOutstanding,
	models.StageReview,
	models.StageInProcess,
	models.StageResolved,
}

type Seeder struct {
	database *mongo.Database
}

func NewSeeder(database *mongo.Database) *Seeder {
	return &Seeder{database: database}
}

// EnsureSeeded populates empty collections with the demo fixtures. Phases
// are always rebuilt so the demo board stays in a known state after
// restarts; team, project and whiteboard are only created when missing.
func (s *Seeder) EnsureSeeded(ctx context.Context) error {
	team := s.database.Collection(store.TeamCollection)
	phases := s.database.Collection(store.TasksCollection)
	project := s.database.Collection(store.ProjectCollection)
	whiteboard := s.database.Collection(store.WhiteboardCollection)

	teamCount, err := team.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count team members: %v", err)
	}
	if teamCount == 0 {
		docs := make([]interface{}, len(demoTeam))
		for i, member := range demoTeam {
			docs[i] = member
		}
		if _, err := team.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed team: %v", err)
		}
		logging.Logger.Info("Event ID: SEED_TEAM, Description: Demo team seeded")
	}

	if _, err := phases.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear phases: %v", err)
	}

	var members []models.TeamMember
	cursor, err := team.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to load team for seeding: %v", err)
	}
	if err := cursor.All(ctx, &members); err != nil {
		return fmt.Errorf("failed to decode team for seeding: %v", err)
	}

	docs := make([]interface{}, len(demoTasks))
	for i, fixture := range demoTasks {
		stage := stages[rand.Intn(len(stages))]
		assignedTo := models.DefaultAssignee
		if len(members) > 0 {
			assignedTo = members[i%len(members)].Username
		}
		docs[i] = models.Task{
			ClientID:   models.DefaultClientID,
			Phase:      stage,
			Goal:       fixture.goal,
			Comments:   fixture.comments,
			Execute:    fixture.execute,
			Stage:      stage,
			AssignedTo: assignedTo,
		}
	}
	if _, err := phases.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed phases: %v", err)
	}
	logging.Logger.Infof("Event ID: SEED_PHASES, Description: All demo phases seeded: %d tasks", len(docs))

	projectCount, err := project.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count projects: %v", err)
	}
	if projectCount == 0 {
		if _, err := project.InsertOne(ctx, models.Project{ID: models.SingletonID, Name: ""}); err != nil {
			return fmt.Errorf("failed to seed project: %v", err)
		}
	}

	whiteboardCount, err := whiteboard.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count whiteboard states: %v", err)
	}
	if whiteboardCount == 0 {
		state := models.WhiteboardState{ID: models.SingletonID, StateJSON: map[string]interface{}{}}
		if _, err := whiteboard.InsertOne(ctx, state); err != nil {
			return fmt.Errorf("failed to seed whiteboard state: %v", err)
		}
	}

	return nil
}

// Reset wipes the seeded collections and repopulates them.
func (s *Seeder) Reset(ctx context.Context) error {
	for _, name := range []string{
		store.TeamCollection,
		store.TasksCollection,
		store.ProjectCollection,
		store.WhiteboardCollection,
	} {
		if _, err := s.database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear %s: %v", name, err)
		}
	}
	return s.EnsureSeeded(ctx)
}
