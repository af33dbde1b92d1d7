package attendance

import (
	"testing"
)

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.Valid() {
			t.Errorf("Status(%q).Valid() = false, want true", s)
		}
	}
	for _, s := range []Status{"", "present", "Sick", "On The Moon"} {
		if s.Valid() {
			t.Errorf("Status(%q).Valid() = true, want false", s)
		}
	}
}

func TestStatusColor(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusPresent, "green"},
		{StatusOvertime, "darkgreen"},
		{StatusHalfDay, "lightgreen"},
		{StatusAbsent, "red"},
		{StatusLeave, "yellow"},
		{StatusLate, "lightgray"},
		{StatusRemoteWork, "lightgray"},
	}
	for _, c := range cases {
		if got := c.status.Color(); got != c.want {
			t.Errorf("Status(%q).Color() = %q, want %q", c.status, got, c.want)
		}
	}
}

func TestStatusBuckets(t *testing.T) {
	if got := StatusPresent.Buckets(); len(got) != 1 || got[0] != BucketPresent {
		t.Errorf("Present buckets = %v", got)
	}
	if got := StatusOvertime.Buckets(); len(got) != 1 || got[0] != BucketPresent {
		t.Errorf("Overtime buckets = %v", got)
	}
	if got := StatusLate.Buckets(); got != nil {
		t.Errorf("Late buckets = %v, want none", got)
	}
	if got := StatusRemoteWork.Buckets(); got != nil {
		t.Errorf("Remote Work buckets = %v, want none", got)
	}
}
