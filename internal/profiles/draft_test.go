package profiles

import (
	"reflect"
	"testing"
)

func TestSetFieldShallow(t *testing.T) {
	before := DefaultProfile()

	after, err := SetField(before, FieldBio, "new bio")
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if after.Bio != "new bio" {
		t.Fatalf("bio not updated")
	}
	if !reflect.DeepEqual(after.Links, before.Links) {
		t.Fatalf("links must not change on a shallow field write")
	}
	if after.Theme != before.Theme {
		t.Fatalf("theme must not change on a shallow field write")
	}
	if before.Bio == "new bio" {
		t.Fatalf("input snapshot was mutated")
	}
}

func TestSetFieldUnknownField(t *testing.T) {
	if _, err := SetField(DefaultProfile(), Field("links"), "nope"); err == nil {
		t.Fatalf("links cannot be set through the shallow path")
	}
}

func TestAddLinkPrependsWithFreshID(t *testing.T) {
	before := DefaultProfile()
	after := AddLink(before, LinkItem{ID: "caller-supplied", Title: "New Link", URL: "https://", IsActive: true})

	if len(after.Links) != len(before.Links)+1 {
		t.Fatalf("expected one more link, got %d", len(after.Links))
	}
	if after.Links[0].Title != "New Link" {
		t.Fatalf("new link must be prepended")
	}
	if after.Links[0].ID == "caller-supplied" || after.Links[0].ID == "" {
		t.Fatalf("link id must be freshly generated, got %q", after.Links[0].ID)
	}
}

func TestAddThenRemoveRestoresSequence(t *testing.T) {
	before := DefaultProfile()
	added := AddLink(before, LinkItem{Title: "temp", URL: "https://x", IsActive: true})
	restored := RemoveLink(added, added.Links[0].ID)

	if !reflect.DeepEqual(restored.Links, before.Links) {
		t.Fatalf("add followed by remove must restore the prior sequence")
	}
}

func TestRemoveLinkAbsentIDIsNoop(t *testing.T) {
	before := DefaultProfile()
	after := RemoveLink(before, "missing-id")
	if !reflect.DeepEqual(after.Links, before.Links) {
		t.Fatalf("removing an absent id must be a no-op")
	}
}

func TestMoveLinkBoundaries(t *testing.T) {
	p := DefaultProfile()

	atTop := MoveLink(p, 0, DirectionUp)
	if !reflect.DeepEqual(atTop.Links, p.Links) {
		t.Fatalf("moving index 0 up must be a no-op")
	}

	last := len(p.Links) - 1
	atBottom := MoveLink(p, last, DirectionDown)
	if !reflect.DeepEqual(atBottom.Links, p.Links) {
		t.Fatalf("moving the last index down must be a no-op")
	}

	outOfRange := MoveLink(p, len(p.Links), DirectionUp)
	if !reflect.DeepEqual(outOfRange.Links, p.Links) {
		t.Fatalf("out-of-range index must be a no-op")
	}
}

func TestMoveLinkSwapsNeighbors(t *testing.T) {
	p := DefaultProfile()
	moved := MoveLink(p, 1, DirectionUp)

	if moved.Links[0].ID != p.Links[1].ID || moved.Links[1].ID != p.Links[0].ID {
		t.Fatalf("expected first two links swapped")
	}
	if moved.Links[2].ID != p.Links[2].ID {
		t.Fatalf("untouched links must keep their position")
	}
}

func TestSetLinkField(t *testing.T) {
	p := DefaultProfile()
	target := p.Links[1].ID

	updated, err := SetLinkField(p, target, LinkFieldTitle, "Portfolio")
	if err != nil {
		t.Fatalf("SetLinkField: %v", err)
	}
	if updated.Links[1].Title != "Portfolio" {
		t.Fatalf("title not updated")
	}
	if updated.Links[0] != p.Links[0] || updated.Links[2] != p.Links[2] {
		t.Fatalf("other links must stay untouched")
	}

	toggled, err := SetLinkField(p, target, LinkFieldIsActive, false)
	if err != nil {
		t.Fatalf("SetLinkField toggle: %v", err)
	}
	if toggled.Links[1].IsActive {
		t.Fatalf("isActive not toggled")
	}

	if _, err := SetLinkField(p, target, LinkFieldIsActive, "not-a-bool"); err == nil {
		t.Fatalf("type mismatch must be rejected")
	}
}

func TestApplyThemeReplacesWholesale(t *testing.T) {
	p := DefaultProfile()
	next := DefaultThemes[2]
	after := ApplyTheme(p, next)

	if after.Theme != next {
		t.Fatalf("theme not replaced")
	}
	if p.Theme == next {
		t.Fatalf("input snapshot was mutated")
	}
}

func TestDraftSingleWriterFlow(t *testing.T) {
	d := NewDraft(DefaultProfile())

	if err := d.SetField(FieldName, "Nadia"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	d.AddLink(LinkItem{Title: "Shop", URL: "https://shop", IsActive: true})
	d.MoveLink(0, DirectionDown)
	d.ApplyTheme(DefaultThemes[1])

	snap := d.Snapshot()
	if snap.Name != "Nadia" {
		t.Fatalf("draft lost the name edit")
	}
	if snap.Theme.ID != DefaultThemes[1].ID {
		t.Fatalf("draft lost the theme edit")
	}
	if len(snap.Links) != len(DefaultProfile().Links)+1 {
		t.Fatalf("draft lost the added link")
	}

	// snapshots are copies, not views
	snap.Links[0].Title = "mutated"
	if d.Snapshot().Links[0].Title == "mutated" {
		t.Fatalf("snapshot mutation leaked into the draft")
	}
}

func TestThemeByID(t *testing.T) {
	if _, ok := ThemeByID("cyber-nebula"); !ok {
		t.Fatalf("preset lookup failed")
	}
	if _, ok := ThemeByID("custom-123"); ok {
		t.Fatalf("custom themes are not catalog entries")
	}
}
