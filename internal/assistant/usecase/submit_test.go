package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"timelog-assistant/config"
	"timelog-assistant/internal/assistant"
	"timelog-assistant/internal/assistant/usecase"
	"timelog-assistant/internal/model"
	"timelog-assistant/internal/settings"
	"timelog-assistant/internal/timesheet/repository"
	"timelog-assistant/pkg/gcalendar"
	"timelog-assistant/pkg/log"
	"timelog-assistant/pkg/openai"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

type mockSettings struct {
	key  string
	fail bool
}

func (m *mockSettings) Get(ctx context.Context) (settings.GetSettingsOutput, error) {
	return settings.GetSettingsOutput{}, nil
}

func (m *mockSettings) Update(ctx context.Context, input settings.UpdateSettingsInput) error {
	return nil
}

func (m *mockSettings) APIKey(ctx context.Context) (string, error) {
	if m.fail {
		return "", settings.ErrFailedToLoad
	}
	return m.key, nil
}

type mockRepo struct {
	customers  map[string]model.Customer
	projects   map[string]model.Project // keyed "customerID/name"
	activities map[string]model.Activity

	nextID          int64
	customerCreates int
	projectCreates  int
	activityCreates int

	saved     []repository.CreateTimesheetOptions
	failBatch bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		customers:  map[string]model.Customer{},
		projects:   map[string]model.Project{},
		activities: map[string]model.Activity{},
		nextID:     100,
	}
}

func (m *mockRepo) id() int64 {
	m.nextID++
	return m.nextID
}

func projectKey(customerID int64, name string) string {
	return fmt.Sprintf("%d/%s", customerID, name)
}

func (m *mockRepo) GetOneCustomer(ctx context.Context, opt repository.GetOneCustomerOptions) (model.Customer, error) {
	return m.customers[opt.Name], nil
}

func (m *mockRepo) CreateCustomer(ctx context.Context, opt repository.CreateCustomerOptions) (model.Customer, error) {
	m.customerCreates++
	c := model.Customer{ID: m.id(), Name: opt.Name, Country: opt.Country, Currency: opt.Currency, Visible: opt.Visible}
	m.customers[opt.Name] = c
	return c, nil
}

func (m *mockRepo) GetOneProject(ctx context.Context, opt repository.GetOneProjectOptions) (model.Project, error) {
	return m.projects[projectKey(opt.CustomerID, opt.Name)], nil
}

func (m *mockRepo) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (model.Project, error) {
	m.projectCreates++
	p := model.Project{ID: m.id(), CustomerID: opt.CustomerID, Name: opt.Name, Visible: opt.Visible}
	m.projects[projectKey(opt.CustomerID, opt.Name)] = p
	return p, nil
}

func (m *mockRepo) GetOneActivity(ctx context.Context, opt repository.GetOneActivityOptions) (model.Activity, error) {
	return m.activities[opt.Name], nil
}

func (m *mockRepo) CreateActivity(ctx context.Context, opt repository.CreateActivityOptions) (model.Activity, error) {
	m.activityCreates++
	a := model.Activity{ID: m.id(), Name: opt.Name, Visible: opt.Visible}
	m.activities[opt.Name] = a
	return a, nil
}

func (m *mockRepo) CreateTimesheetsBatch(ctx context.Context, opts []repository.CreateTimesheetOptions) ([]model.Timesheet, error) {
	if m.failBatch {
		return nil, errors.New("db error on record 2")
	}
	created := make([]model.Timesheet, 0, len(opts))
	for _, o := range opts {
		m.saved = append(m.saved, o)
		created = append(created, model.Timesheet{
			ID: m.id(), UserID: o.UserID, ProjectID: o.ProjectID, ActivityID: o.ActivityID,
			Description: o.Description, Begin: o.Begin, End: o.End, HourlyRate: o.HourlyRate,
		})
	}
	return created, nil
}

type mockCalendar struct {
	events []gcalendar.CreateEventRequest
	fail   bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.events = append(m.events, req)
	return &gcalendar.Event{HtmlLink: "http://cal.link"}, nil
}

// test fixtures

func testConfig() *config.Config {
	return &config.Config{
		OpenAI: config.OpenAIConfig{
			ChatTemperature:  0.7,
			ChatMaxTokens:    2000,
			ParseTemperature: 0.1,
			ParseMaxTokens:   3000,
		},
		Assistant: config.AssistantConfig{
			Timezone:         "UTC",
			DefaultRate:      90,
			DefaultStartHour: 9,
			DefaultDuration:  60,
		},
		GoogleCalendar: config.GoogleCalendarConfig{CalendarID: "primary"},
	}
}

// newLLMClient points an OpenAI client at a local fake and counts requests.
func newLLMClient(t *testing.T, handler http.HandlerFunc) (*openai.Client, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	c := openai.NewClient(openai.Config{}, &mockLogger{})
	c.SetAPIURL(ts.URL)
	return c, &calls
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }

var testScope = model.Scope{UserID: "42", DisplayName: "Jane"}

func TestSubmit(t *testing.T) {
	entry := func() assistant.RawEntry {
		return assistant.RawEntry{
			Date:        "2025-07-24",
			StartTime:   strPtr("09:00"),
			EndTime:     strPtr("10:30"),
			Description: "Foundation work",
			Project:     strPtr("Shed"),
			Client:      "Wynnes",
			Rate:        floatPtr(90),
		}
	}

	t.Run("creates records and referenced entities", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(testConfig(), repo, &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

		out, err := uc.Submit(context.Background(), testScope, []assistant.RawEntry{entry()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CreatedCount != 1 {
			t.Errorf("expected 1 created, got %d", out.CreatedCount)
		}
		if repo.customerCreates != 1 || repo.projectCreates != 1 || repo.activityCreates != 1 {
			t.Errorf("expected one create each, got c=%d p=%d a=%d",
				repo.customerCreates, repo.projectCreates, repo.activityCreates)
		}
		saved := repo.saved[0]
		if saved.UserID != "42" {
			t.Errorf("expected user 42, got %q", saved.UserID)
		}
		if got := saved.End.Sub(saved.Begin).Minutes(); got != 90 {
			t.Errorf("expected 90 minute span, got %.0f", got)
		}
		if saved.HourlyRate == nil || *saved.HourlyRate != 90 {
			t.Errorf("expected hourly rate 90, got %v", saved.HourlyRate)
		}
	})

	t.Run("batch failure leaves zero records durable", func(t *testing.T) {
		repo := newMockRepo()
		repo.failBatch = true
		uc := usecase.New(testConfig(), repo, &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

		e := entry()
		_, err := uc.Submit(context.Background(), testScope, []assistant.RawEntry{e, e, e})
		if err != assistant.ErrFailedToSave {
			t.Fatalf("expected ErrFailedToSave, got %v", err)
		}
		if len(repo.saved) != 0 {
			t.Errorf("expected no durable records, got %d", len(repo.saved))
		}
	})

	t.Run("same client across entries resolves to one customer", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(testConfig(), repo, &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

		_, err := uc.Submit(context.Background(), testScope, []assistant.RawEntry{entry(), entry()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.customerCreates != 1 {
			t.Errorf("expected a single customer create, got %d", repo.customerCreates)
		}
		if repo.saved[0].ProjectID != repo.saved[1].ProjectID {
			t.Error("expected both records on the same project")
		}
	})

	t.Run("non-billable entry records no rate", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(testConfig(), repo, &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

		e := entry()
		e.Billable = boolPtr(false)
		if _, err := uc.Submit(context.Background(), testScope, []assistant.RawEntry{e}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saved[0].HourlyRate != nil {
			t.Errorf("expected nil rate, got %v", *repo.saved[0].HourlyRate)
		}
	})

	t.Run("mirrors submitted entries to the calendar", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{}
		uc := usecase.New(testConfig(), repo, &mockSettings{key: "sk-test"}, nil, cal, &mockLogger{})

		if _, err := uc.Submit(context.Background(), testScope, []assistant.RawEntry{entry()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.events) != 1 {
			t.Fatalf("expected 1 calendar event, got %d", len(cal.events))
		}
		if cal.events[0].Summary != "Shed: Foundation work" {
			t.Errorf("unexpected summary %q", cal.events[0].Summary)
		}
	})

	t.Run("calendar failure does not fail the submit", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(testConfig(), repo, &mockSettings{key: "sk-test"}, nil, &mockCalendar{fail: true}, &mockLogger{})

		out, err := uc.Submit(context.Background(), testScope, []assistant.RawEntry{entry()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CreatedCount != 1 {
			t.Errorf("expected 1 created, got %d", out.CreatedCount)
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		uc := usecase.New(testConfig(), newMockRepo(), &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

		if _, err := uc.Submit(context.Background(), testScope, nil); err != assistant.ErrNoEntries {
			t.Errorf("expected ErrNoEntries, got %v", err)
		}
	})
}
