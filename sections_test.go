package gridpane

import "testing"

func TestUniformSections_SectionAt(t *testing.T) {
	u := NewUniformSections(5, 20)

	tests := []struct {
		offset  int
		want    int
		covered bool
	}{
		{0, 0, true},
		{19, 0, true},
		{20, 1, true},
		{99, 4, true},
		{100, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := u.SectionAt(tt.offset)
		if ok != tt.covered || (ok && got != tt.want) {
			t.Errorf("SectionAt(%d) = (%d, %v), want (%d, %v)",
				tt.offset, got, ok, tt.want, tt.covered)
		}
	}
}

func TestUniformSections_PositionSize(t *testing.T) {
	u := NewUniformSections(5, 20)
	if got := u.SectionPosition(3); got != 60 {
		t.Errorf("SectionPosition(3) = %d, want 60", got)
	}
	if got := u.SectionSize(3); got != 20 {
		t.Errorf("SectionSize(3) = %d, want 20", got)
	}
	if got := u.SectionCount(); got != 5 {
		t.Errorf("SectionCount() = %d, want 5", got)
	}
}

func TestSectionList_SectionAt(t *testing.T) {
	l := NewSectionList(10, 0, 30, 5)

	tests := []struct {
		offset  int
		want    int
		covered bool
	}{
		{0, 0, true},
		{9, 0, true},
		{10, 2, true}, // zero-size section 1 is skipped
		{39, 2, true},
		{40, 3, true},
		{44, 3, true},
		{45, 0, false},
		{-2, 0, false},
	}
	for _, tt := range tests {
		got, ok := l.SectionAt(tt.offset)
		if ok != tt.covered || (ok && got != tt.want) {
			t.Errorf("SectionAt(%d) = (%d, %v), want (%d, %v)",
				tt.offset, got, ok, tt.want, tt.covered)
		}
	}
}

func TestSectionList_PositionsAndTotal(t *testing.T) {
	l := NewSectionList(10, 0, 30, 5)
	wantPos := []int{0, 10, 10, 40}
	for i, want := range wantPos {
		if got := l.SectionPosition(i); got != want {
			t.Errorf("SectionPosition(%d) = %d, want %d", i, got, want)
		}
	}
	if got := l.TotalSize(); got != 45 {
		t.Errorf("TotalSize() = %d, want 45", got)
	}
}

func TestSectionList_SetSize_Notifies(t *testing.T) {
	l := NewSectionList(10, 20)
	fired := 0
	sub := l.OnSectionsResized(func() { fired++ })
	defer sub.Close()

	l.SetSize(1, 25)
	if fired != 1 {
		t.Fatalf("notification fired %d times, want 1", fired)
	}
	if got := l.SectionPosition(1); got != 10 {
		t.Errorf("SectionPosition(1) = %d, want 10", got)
	}
	if got := l.TotalSize(); got != 35 {
		t.Errorf("TotalSize() = %d, want 35", got)
	}

	// Same size again: no change, no notification.
	l.SetSize(1, 25)
	if fired != 1 {
		t.Errorf("notification fired %d times after no-op SetSize, want 1", fired)
	}
}

func TestSubscription_Close(t *testing.T) {
	u := NewUniformSections(3, 10)
	fired := 0
	sub := u.OnSectionsResized(func() { fired++ })

	u.SetSize(12)
	sub.Close()
	sub.Close() // idempotent
	u.SetSize(14)

	if fired != 1 {
		t.Errorf("notification fired %d times, want 1 (closed after first)", fired)
	}
}
