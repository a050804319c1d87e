package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Zachkp/folio/internal/domain"
)

func TestProjects_Empty(t *testing.T) {
	if diff := cmp.Diff(View{Empty: NoProjects}, Projects(nil, "Go")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestProjects_ChipsAndLinks(t *testing.T) {
	got := Projects([]domain.Project{
		{Title: "Mailer", Description: "email", Tech: []string{"Go", "IMAP"}, Repo: "https://example.com/mailer"},
		{Title: "Site", Tech: []string{"HTMX"}, Demo: "https://example.com", Repo: "https://example.com/site"},
		{Title: "Sketch"},
	}, "Go")

	want := View{Cards: []Card{
		{
			Title:       "Mailer",
			Description: "email",
			Chips:       []Chip{{"Go", true}, {"IMAP", false}},
			Links:       []Link{{"Code", "https://example.com/mailer"}},
		},
		{
			Title: "Site",
			Chips: []Chip{{"HTMX", false}},
			Links: []Link{{"Live", "https://example.com"}, {"Code", "https://example.com/site"}},
		},
		{
			Title: "Sketch",
			Chips: []Chip{},
		},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSkills_NoActive(t *testing.T) {
	got := Skills([]domain.Skill{{Name: "Go"}, {Name: "SQL"}}, "")
	want := []Chip{{"Go", false}, {"SQL", false}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExperience(t *testing.T) {
	got := Experience([]domain.Experience{
		{Role: "Engineer", Company: "Acme", Period: "2021 - Present", Location: "Remote", Summary: "Built things", Details: []string{"a", "b"}},
		{Role: "Intern", Company: "Initech", Period: "2020"},
	})

	want := []ExperienceItem{
		{Heading: "Engineer", Company: "Acme", Meta: "2021 - Present • Remote", Summary: "Built things", Details: []string{"a", "b"}},
		{Heading: "Intern", Company: "Initech", Meta: "2020 • "},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAbout_Fallbacks(t *testing.T) {
	got := About(domain.About{Name: "Zach", Role: "Developer", Email: "zach@example.com"})

	want := AboutView{
		Name:            "Zach",
		Role:            "Developer",
		Avatar:          DefaultAvatar,
		Email:           "zach@example.com",
		EmailHref:       "mailto:zach@example.com",
		LinkedIn:        MissingLink,
		GitHub:          MissingLink,
		Portfolio:       MissingLink,
		ExperienceYears: MissingStat,
		ProjectsCount:   MissingStat,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAbout_PresentValues(t *testing.T) {
	got := About(domain.About{
		Avatar:          "/img/me.png",
		GitHub:          "https://github.com/zach",
		ExperienceYears: "3",
		ProjectsCount:   "12",
	})

	if got.Avatar != "/img/me.png" || got.GitHub != "https://github.com/zach" {
		t.Errorf("unexpected links: %+v", got)
	}
	if got.ExperienceYears != "3" || got.ProjectsCount != "12" {
		t.Errorf("unexpected stats: %+v", got)
	}
	if got.EmailHref != "" {
		t.Errorf("expected no mail link without email, got %q", got.EmailHref)
	}
}
