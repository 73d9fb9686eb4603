package device

import (
	"context"
	"testing"
)

type fakePermissions struct {
	status PermissionStatus
	answer PermissionStatus
	asked  int
}

func (f *fakePermissions) Get(context.Context, Capability) (PermissionStatus, error) {
	return f.status, nil
}

func (f *fakePermissions) Ask(context.Context, Capability) (PermissionStatus, error) {
	f.asked++
	f.status = f.answer
	return f.answer, nil
}

func TestObtainSkipsAskWhenGranted(t *testing.T) {
	p := &fakePermissions{status: Granted}
	status, err := Obtain(context.Background(), p, Calendar)
	if err != nil || status != Granted {
		t.Fatalf("expected granted, got %s %v", status, err)
	}
	if p.asked != 0 {
		t.Fatalf("asked %d times for a granted capability", p.asked)
	}
}

func TestObtainAsksWhenUndetermined(t *testing.T) {
	p := &fakePermissions{status: Undetermined, answer: Denied}
	status, _ := Obtain(context.Background(), p, Notifications)
	if status != Denied || p.asked != 1 {
		t.Fatalf("expected one ask resulting in denied, got %s after %d asks", status, p.asked)
	}
}

type listCalendars []CalendarInfo

func (l listCalendars) Calendars(context.Context) ([]CalendarInfo, error) { return l, nil }

func (l listCalendars) CreateEvent(context.Context, string, Event) (string, error) { return "", nil }

type defaultCalendars struct {
	listCalendars
	def *CalendarInfo
}

func (d defaultCalendars) DefaultCalendar(context.Context) (*CalendarInfo, error) { return d.def, nil }

func TestResolveDefaultCalendar(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		cals Calendars
		want string
	}{
		{name: "none", cals: listCalendars{}, want: ""},
		{name: "first", cals: listCalendars{{ID: "a"}, {ID: "b"}}, want: "a"},
		{name: "primary", cals: listCalendars{{ID: "a"}, {ID: "b", Primary: true}}, want: "b"},
		{name: "explicit default", cals: defaultCalendars{listCalendars{{ID: "a", Primary: true}}, &CalendarInfo{ID: "z"}}, want: "z"},
		{name: "default missing falls back", cals: defaultCalendars{listCalendars{{ID: "a"}}, nil}, want: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := ResolveDefaultCalendar(ctx, tt.cals)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			got := ""
			if cal != nil {
				got = cal.ID
			}
			if got != tt.want {
				t.Fatalf("resolved %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePermissionStatus(t *testing.T) {
	if ParsePermissionStatus("granted") != Granted || ParsePermissionStatus("denied") != Denied {
		t.Fatal("known statuses not parsed")
	}
	if ParsePermissionStatus("maybe") != Undetermined {
		t.Fatal("unknown status should be undetermined")
	}
}
