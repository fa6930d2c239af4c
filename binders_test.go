package orgbook

import (
	"testing"
)

func TestBinderCategory_TimeBounds(t *testing.T) {
	testCases := []struct {
		category BinderCategory
		hasTime  bool
		min, max int
		unit     string
		required bool
	}{
		{BinderJail, true, 15, 300, "minutes", true},
		{BinderMute, true, 15, 600, "minutes", true},
		{BinderBan, true, 1, 30, "days", true},
		{BinderWarn, false, 0, 0, "", false},
		{BinderPM, true, 1, 9999, "", false},
		{BinderOther, true, 1, 9999, "", false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.category), func(t *testing.T) {
			bounds, hasTime := tc.category.TimeBounds()
			if hasTime != tc.hasTime {
				t.Fatalf("hasTime = %v, want %v", hasTime, tc.hasTime)
			}
			if !hasTime {
				return
			}
			if bounds.Min != tc.min || bounds.Max != tc.max || bounds.Unit != tc.unit || bounds.Required != tc.required {
				t.Errorf("bounds = %+v, want {%d %d %q %v}", bounds, tc.min, tc.max, tc.unit, tc.required)
			}
		})
	}
}

func TestBinders_AddValidation(t *testing.T) {
	testCases := []struct {
		name    string
		binder  Binder
		wantErr bool
	}{
		{
			name:   "valid jail",
			binder: Binder{Name: "jail cheater", Category: BinderJail, Usage: UsageRecon, Time: 120, Reason: "cheating"},
		},
		{
			name:    "jail below minimum",
			binder:  Binder{Name: "short jail", Category: BinderJail, Usage: UsageRecon, Time: 10, Reason: "x"},
			wantErr: true,
		},
		{
			name:    "jail above maximum",
			binder:  Binder{Name: "long jail", Category: BinderJail, Usage: UsageRecon, Time: 301, Reason: "x"},
			wantErr: true,
		},
		{
			name:    "jail missing required time",
			binder:  Binder{Name: "no time", Category: BinderJail, Usage: UsageRecon, Reason: "x"},
			wantErr: true,
		},
		{
			name:   "mute upper bound",
			binder: Binder{Name: "max mute", Category: BinderMute, Usage: UsageRecon, Time: 600, Reason: "spam"},
		},
		{
			name:   "ban in days",
			binder: Binder{Name: "month ban", Category: BinderBan, Usage: UsageRecon, Time: 30, Reason: "rmm"},
		},
		{
			name:   "warn carries no time",
			binder: Binder{Name: "warning", Category: BinderWarn, Usage: UsageRecon, Reason: "minor"},
		},
		{
			name:    "warn with time rejected",
			binder:  Binder{Name: "warning", Category: BinderWarn, Usage: UsageRecon, Time: 5, Reason: "minor"},
			wantErr: true,
		},
		{
			name:   "pm time optional",
			binder: Binder{Name: "quick pm", Category: BinderPM, Usage: UsageRecon, Reason: "hello"},
		},
		{
			name:   "other free form",
			binder: Binder{Name: "teleport", Category: BinderOther, Usage: UsageEverywhere, Command: "/tpc 500 500"},
		},
		{
			name:    "everywhere needs command",
			binder:  Binder{Name: "empty", Category: BinderOther, Usage: UsageEverywhere},
			wantErr: true,
		},
		{
			name:    "empty name",
			binder:  Binder{Category: BinderJail, Usage: UsageRecon, Time: 60, Reason: "x"},
			wantErr: true,
		},
		{
			name:    "unknown category",
			binder:  Binder{Name: "odd", Category: "kick", Usage: UsageRecon},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var bs Binders
			b, err := bs.Add(tc.binder)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Add() succeeded, want error")
				}
				if len(bs) != 0 {
					t.Errorf("failed Add() stored the binder")
				}
				return
			}
			if err != nil {
				t.Fatalf("Add() failed: %v", err)
			}
			if b.ID == "" || b.CreatedAt.IsZero() {
				t.Error("Add() must stamp id and creation time")
			}
		})
	}
}

func TestBinder_Render(t *testing.T) {
	testCases := []struct {
		name   string
		binder Binder
		want   string
	}{
		{
			name:   "jail with time",
			binder: Binder{Category: BinderJail, Usage: UsageRecon, Time: 120, Reason: "cheating"},
			want:   "/jail {reconID} 120 cheating",
		},
		{
			name:   "warn has no time slot",
			binder: Binder{Category: BinderWarn, Usage: UsageRecon, Reason: "minor offence"},
			want:   "/warn {reconID} minor offence",
		},
		{
			name:   "pm without time",
			binder: Binder{Category: BinderPM, Usage: UsageRecon, Reason: "read the rules"},
			want:   "/pm {reconID} read the rules",
		},
		{
			name:   "everywhere returns stored command",
			binder: Binder{Category: BinderOther, Usage: UsageEverywhere, Command: "/tpc 500 500"},
			want:   "/tpc 500 500",
		},
		{
			name:   "other recon has no prefix",
			binder: Binder{Category: BinderOther, Usage: UsageRecon, Command: "/custom x"},
			want:   "/custom x",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.binder.Render(); got != tc.want {
				t.Errorf("Render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBinders_Search(t *testing.T) {
	var bs Binders
	mustAdd := func(b Binder) {
		t.Helper()
		if _, err := bs.Add(b); err != nil {
			t.Fatalf("Add(%q) failed: %v", b.Name, err)
		}
	}
	mustAdd(Binder{Name: "jail cheater", Category: BinderJail, Usage: UsageRecon, Time: 60, Reason: "cheat"})
	mustAdd(Binder{Name: "mute spam", Category: BinderMute, Usage: UsageRecon, Time: 30, Reason: "spam"})
	mustAdd(Binder{Name: "teleport", Category: BinderOther, Usage: UsageEverywhere, Command: "/tpc 500 500"})

	count := func(category BinderCategory, query string) int {
		n := 0
		for range bs.Search(category, query) {
			n++
		}
		return n
	}

	if got := count("", ""); got != 3 {
		t.Errorf("Search(all) = %d, want 3", got)
	}
	if got := count(BinderMute, ""); got != 1 {
		t.Errorf("Search(mute) = %d, want 1", got)
	}
	if got := count("", "SPAM"); got != 1 {
		t.Errorf("Search(query SPAM) = %d, want 1", got)
	}
	// Command text is searched too.
	if got := count("", "tpc"); got != 1 {
		t.Errorf("Search(query tpc) = %d, want 1", got)
	}
	if got := count(BinderJail, "spam"); got != 0 {
		t.Errorf("Search(jail, spam) = %d, want 0", got)
	}
}

func TestBinders_UpdateRemove(t *testing.T) {
	var bs Binders
	b, err := bs.Add(Binder{Name: "mute spam", Category: BinderMute, Usage: UsageRecon, Time: 30, Reason: "spam"})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	b.Time = 90
	if err := bs.Update(b.ID, b); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if bs[0].Time != 90 {
		t.Errorf("time = %d, want 90", bs[0].Time)
	}

	// Updates are validated like adds.
	b.Time = 700
	if err := bs.Update(b.ID, b); err == nil {
		t.Error("Update() with out-of-bounds time succeeded, want error")
	}

	if err := bs.Remove(b.ID); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if len(bs) != 0 {
		t.Errorf("binders left = %d, want 0", len(bs))
	}
	if err := bs.Remove(b.ID); err == nil {
		t.Error("Remove() of missing binder succeeded, want error")
	}
}
