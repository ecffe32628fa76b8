package usecase_test

import (
	"context"
	"testing"

	"timelog-assistant/internal/assistant"
	"timelog-assistant/internal/assistant/usecase"
	"timelog-assistant/internal/model"
)

// repoWithShed seeds a repo where customer "Wynnes" already owns a project
// named "Shed".
func repoWithShed() *mockRepo {
	repo := newMockRepo()
	repo.customers["Wynnes"] = model.Customer{ID: 1, Name: "Wynnes", Visible: true}
	repo.projects[projectKey(1, "Shed")] = model.Project{ID: 2, CustomerID: 1, Name: "Shed", Visible: true}
	return repo
}

func TestPreviewDisambiguation(t *testing.T) {
	uc := usecase.New(testConfig(), repoWithShed(), &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

	preview := func(t *testing.T, e assistant.RawEntry) assistant.PreviewRow {
		t.Helper()
		e.Date = "2025-07-24"
		e.Client = "Wynnes"
		rows, err := uc.Preview(context.Background(), testScope, []assistant.RawEntry{e})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return rows[0]
	}

	t.Run("explicit project wins, empty description is derived", func(t *testing.T) {
		row := preview(t, assistant.RawEntry{Project: strPtr("Shed"), Duration: intPtr(60)})
		if row.ProjectName != "Shed" || row.Description != "Work on Shed" {
			t.Errorf("got project %q description %q", row.ProjectName, row.Description)
		}
	})

	t.Run("colon separator splits into known project and task", func(t *testing.T) {
		row := preview(t, assistant.RawEntry{Description: "Shed: Foundation work", Duration: intPtr(60)})
		if row.ProjectName != "Shed" || row.Description != "Foundation work" {
			t.Errorf("got project %q description %q", row.ProjectName, row.Description)
		}
	})

	t.Run("lone known project name becomes the project", func(t *testing.T) {
		row := preview(t, assistant.RawEntry{Description: "Shed", Duration: intPtr(60)})
		if row.ProjectName != "Shed" || row.Description != "Work on Shed" {
			t.Errorf("got project %q description %q", row.ProjectName, row.Description)
		}
	})

	t.Run("unknown description falls back to General", func(t *testing.T) {
		row := preview(t, assistant.RawEntry{Description: "Website development", Duration: intPtr(60)})
		if row.ProjectName != "General" || row.Description != "Website development" {
			t.Errorf("got project %q description %q", row.ProjectName, row.Description)
		}
	})

	t.Run("project sentinel null is treated as absent", func(t *testing.T) {
		row := preview(t, assistant.RawEntry{Project: strPtr("null"), Description: "Shed", Duration: intPtr(60)})
		if row.ProjectName != "Shed" {
			t.Errorf("got project %q", row.ProjectName)
		}
	})
}

func TestPreviewTimesAndTotal(t *testing.T) {
	uc := usecase.New(testConfig(), repoWithShed(), &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

	t.Run("start and end times are used verbatim", func(t *testing.T) {
		rows, err := uc.Preview(context.Background(), testScope, []assistant.RawEntry{{
			Date:        "2025-07-24",
			StartTime:   strPtr("09:00"),
			EndTime:     strPtr("10:30"),
			Duration:    intPtr(45), // stale; recomputed from the range
			Description: "Foundation work",
			Project:     strPtr("Shed"),
			Client:      "Wynnes",
			Rate:        floatPtr(90),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		row := rows[0]
		if row.Duration != 90 {
			t.Errorf("expected 90 minutes, got %d", row.Duration)
		}
		if row.Total != 135.00 {
			t.Errorf("expected total 135.00, got %.2f", row.Total)
		}
	})

	t.Run("duration-only entry starts at the default hour", func(t *testing.T) {
		rows, err := uc.Preview(context.Background(), testScope, []assistant.RawEntry{{
			Date:        "2025-07-24",
			Duration:    intPtr(60),
			Description: "Planning",
			Client:      "Wynnes",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		row := rows[0]
		if row.Begin.Hour() != 9 || row.Begin.Minute() != 0 {
			t.Errorf("expected 09:00 begin, got %s", row.Begin.Format("15:04"))
		}
		if row.End.Hour() != 10 || row.End.Minute() != 0 {
			t.Errorf("expected 10:00 end, got %s", row.End.Format("15:04"))
		}
	})

	t.Run("defaults fill in client, billable and rate", func(t *testing.T) {
		rows, err := uc.Preview(context.Background(), testScope, []assistant.RawEntry{{
			Date:        "2025-07-24",
			Duration:    intPtr(60),
			Description: "Planning",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		row := rows[0]
		if row.CustomerName != "Unknown Client" {
			t.Errorf("expected Unknown Client, got %q", row.CustomerName)
		}
		if !row.Billable {
			t.Error("expected billable default true")
		}
		if row.Rate != 90 {
			t.Errorf("expected default rate 90, got %.2f", row.Rate)
		}
	})

	t.Run("end before start is invalid", func(t *testing.T) {
		_, err := uc.Preview(context.Background(), testScope, []assistant.RawEntry{{
			Date:        "2025-07-24",
			StartTime:   strPtr("10:00"),
			EndTime:     strPtr("09:00"),
			Description: "x",
		}})
		if err != assistant.ErrInvalidEntry {
			t.Errorf("expected ErrInvalidEntry, got %v", err)
		}
	})

	t.Run("preview never writes", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(testConfig(), repo, &mockSettings{key: "sk-test"}, nil, nil, &mockLogger{})

		_, err := uc.Preview(context.Background(), testScope, []assistant.RawEntry{{
			Date:        "2025-07-24",
			Duration:    intPtr(60),
			Description: "Planning",
			Client:      "Brand New Co",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.customerCreates != 0 || repo.projectCreates != 0 || repo.activityCreates != 0 {
			t.Error("expected no entity creation during preview")
		}
	})
}
