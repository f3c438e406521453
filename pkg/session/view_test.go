package session_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-vesselcalc/pkg/gateway"
	"github.com/goliatone/go-vesselcalc/pkg/session"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
	"github.com/goliatone/go-vesselcalc/pkg/wizard"
)

func TestViewPerStep(t *testing.T) {
	s, _ := session.New(gateway.NewLocal())

	view := s.View()
	if view.Title != session.TitleCategories || view.CanGoBack {
		t.Fatalf("unexpected category view %+v", view)
	}
	if len(view.Categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(view.Categories))
	}

	if err := s.SelectCategory("fine-displacement"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	view = s.View()
	if view.Step != wizard.ChoosingSubType || view.Title != session.TitleSubTypes || !view.CanGoBack {
		t.Fatalf("unexpected sub-type view %+v", view)
	}
	var ids []string
	for _, sub := range view.SubTypes {
		ids = append(ids, sub.ID)
	}
	if diff := cmp.Diff([]string{"patrol", "motor-yacht", "pilot-boat", "research"}, ids); diff != "" {
		t.Fatalf("sub-types mismatch (-want +got):\n%s", diff)
	}

	if err := s.SelectSubType("pilot-boat"); err != nil {
		t.Fatalf("SelectSubType: %v", err)
	}
	s.SetField("draft", "1.8")
	view = s.View()
	if view.Subtitle != "Fine Displacement - pilot-boat" {
		t.Fatalf("subtitle = %q", view.Subtitle)
	}
	if len(view.Fields) != 9 {
		t.Fatalf("expected 9 fields, got %d", len(view.Fields))
	}
	draft := view.Fields[4]
	if draft.Key != "draft" || draft.Value != "1.8" || draft.Placeholder != "Enter Draft" {
		t.Fatalf("unexpected draft field %+v", draft)
	}
}

func TestViewEmptySubTypeList(t *testing.T) {
	catalog := taxonomy.MustNew(taxonomy.Entry{
		Category: taxonomy.Category{ID: "concept", Name: "Concept"},
		SubTypes: []taxonomy.SubType{},
	})
	s, _ := session.New(gateway.NewLocal(gateway.WithCatalog(catalog)), session.WithCatalog(catalog))
	if err := s.SelectCategory("concept"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	view := s.View()
	if view.SubTypes == nil || len(view.SubTypes) != 0 {
		t.Fatalf("expected empty, non-nil sub-type list, got %#v", view.SubTypes)
	}
}

func TestHeading(t *testing.T) {
	category := taxonomy.Category{ID: "planing", Name: "Planing"}
	cases := []struct {
		sel  wizard.Selection
		want string
	}{
		{wizard.Selection{}, ""},
		{wizard.Selection{Category: &category}, "Planing"},
		{wizard.Selection{Category: &category, SubType: "rib"}, "Planing - rib"},
	}
	for _, tc := range cases {
		if got := session.Heading(tc.sel); got != tc.want {
			t.Fatalf("Heading(%+v) = %q, want %q", tc.sel, got, tc.want)
		}
	}
}
