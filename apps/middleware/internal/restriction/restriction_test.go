package restriction

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

func tais(plmn string, tacs ...[]int) []model.ForbiddenTAI {
	t := model.ForbiddenTAI{PLMN: plmn}
	for _, a := range tacs {
		t.Areas = append(t.Areas, model.Area{TACs: a})
	}
	return []model.ForbiddenTAI{t}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name        string
		before      []model.ForbiddenTAI
		want        []model.ForbiddenTAI
		wantChanged bool
	}{
		{
			name:        "no restrictions",
			before:      nil,
			want:        tais("00101", []int{1234}),
			wantChanged: true,
		},
		{
			name:        "existing plmn entry",
			before:      tais("00101", []int{1}),
			want:        tais("00101", []int{1, 1234}),
			wantChanged: true,
		},
		{
			name:        "already present in second area",
			before:      tais("00101", []int{1}, []int{1234}),
			want:        tais("00101", []int{1}, []int{1234}),
			wantChanged: false,
		},
		{
			name: "already present in a later entry for the same plmn",
			before: append(tais("00101", []int{7}),
				tais("00101", []int{1234})...),
			want: append(tais("00101", []int{7}),
				tais("00101", []int{1234})...),
			wantChanged: false,
		},
		{
			name:        "plmn entry without areas",
			before:      []model.ForbiddenTAI{{PLMN: "00101"}},
			want:        tais("00101", []int{1234}),
			wantChanged: true,
		},
		{
			name:   "other plmn only",
			before: tais("99940", []int{1234}),
			want: append(tais("99940", []int{1234}),
				tais("00101", []int{1234})...),
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ue := &model.UE{IMSI: "001010000000001", ForbiddenTAIs: tt.before}
			if got := Add(ue, 1234, "00101"); got != tt.wantChanged {
				t.Errorf("Add() = %v, want %v", got, tt.wantChanged)
			}
			if diff := cmp.Diff(tt.want, ue.ForbiddenTAIs); diff != "" {
				t.Errorf("ForbiddenTAIs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddIsIdempotent(t *testing.T) {
	ue := &model.UE{IMSI: "001010000000001"}
	Add(ue, 1234, "00101")
	if Add(ue, 1234, "00101") {
		t.Error("second Add() reported a change")
	}
	if diff := cmp.Diff(tais("00101", []int{1234}), ue.ForbiddenTAIs); diff != "" {
		t.Errorf("TAC should appear once (-want +got):\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name        string
		before      []model.ForbiddenTAI
		want        []model.ForbiddenTAI
		wantChanged bool
	}{
		{
			name:        "only restriction is pruned entirely",
			before:      tais("00101", []int{1234}),
			want:        nil,
			wantChanged: true,
		},
		{
			name:        "other tacs kept",
			before:      tais("00101", []int{1, 1234, 2}),
			want:        tais("00101", []int{1, 2}),
			wantChanged: true,
		},
		{
			name:        "empty area dropped, sibling kept",
			before:      tais("00101", []int{1234}, []int{5}),
			want:        tais("00101", []int{5}),
			wantChanged: true,
		},
		{
			name:        "tac in several areas",
			before:      tais("00101", []int{1234}, []int{1234, 6}),
			want:        tais("00101", []int{6}),
			wantChanged: true,
		},
		{
			name:        "other plmn untouched",
			before:      append(tais("99940", []int{1234}), tais("00101", []int{1234})...),
			want:        tais("99940", []int{1234}),
			wantChanged: true,
		},
		{
			name:        "tac absent",
			before:      tais("00101", []int{1}),
			want:        tais("00101", []int{1}),
			wantChanged: false,
		},
		{
			name:        "no restrictions",
			before:      nil,
			want:        nil,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ue := &model.UE{IMSI: "001010000000001", ForbiddenTAIs: tt.before}
			if got := Remove(ue, 1234, "00101"); got != tt.wantChanged {
				t.Errorf("Remove() = %v, want %v", got, tt.wantChanged)
			}
			if diff := cmp.Diff(tt.want, ue.ForbiddenTAIs); diff != "" {
				t.Errorf("ForbiddenTAIs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	var ue model.UE
	if err := json.Unmarshal([]byte(`{"imsi":"001010000000005","opc":"ab"}`), &ue); err != nil {
		t.Fatal(err)
	}
	before, _ := json.Marshal(ue)

	Add(&ue, 1234, "00101")
	if !Remove(&ue, 1234, "00101") {
		t.Fatal("Remove() reported no change")
	}

	after, _ := json.Marshal(ue)
	if string(before) != string(after) {
		t.Errorf("round trip changed the record:\nbefore %s\nafter  %s", before, after)
	}
}

func TestRemoveKeepsAgentMembers(t *testing.T) {
	note := map[string]json.RawMessage{"note": json.RawMessage(`"x"`)}
	ue := &model.UE{
		IMSI: "001010000000001",
		ForbiddenTAIs: []model.ForbiddenTAI{{
			PLMN:  "00101",
			Areas: []model.Area{{TACs: []int{1, 1234}, Extra: note}},
			Extra: note,
		}},
	}

	if !Remove(ue, 1234, "00101") {
		t.Fatal("Remove() reported no change")
	}
	want := []model.ForbiddenTAI{{
		PLMN:  "00101",
		Areas: []model.Area{{TACs: []int{1}, Extra: note}},
		Extra: note,
	}}
	if diff := cmp.Diff(want, ue.ForbiddenTAIs); diff != "" {
		t.Errorf("ForbiddenTAIs mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanRestrict(t *testing.T) {
	tenantUE := &model.UE{IMSI: "001010000000001"}
	otherUE := &model.UE{IMSI: "001010000000002"}
	alreadyRestricted := &model.UE{IMSI: "001010000000003", ForbiddenTAIs: tais("00101", []int{1234})}
	leadingZero := &model.UE{IMSI: "01010000000001"}

	ues := []*model.UE{tenantUE, otherUE, alreadyRestricted, leadingZero, nil}
	plan := PlanRestrict(ues, []string{"001010000000001", "1010000000001"}, 1234, "00101")

	var got []string
	for _, ue := range plan.Modified {
		got = append(got, ue.IMSI)
	}
	// IMSIは正規化しないため先頭ゼロ違いは別加入者として扱う
	if diff := cmp.Diff([]string{"001010000000002", "01010000000001"}, got); diff != "" {
		t.Errorf("modified IMSIs mismatch (-want +got):\n%s", diff)
	}

	if len(plan.Originals) != len(plan.Modified) {
		t.Fatalf("Originals = %d, Modified = %d", len(plan.Originals), len(plan.Modified))
	}
	if plan.Originals[0].ForbiddenTAIs != nil {
		t.Errorf("original copy should be pre-mutation: %+v", plan.Originals[0])
	}
	if diff := cmp.Diff(tais("00101", []int{1234}), plan.Modified[0].ForbiddenTAIs); diff != "" {
		t.Errorf("modified restriction mismatch (-want +got):\n%s", diff)
	}
	if otherUE.ForbiddenTAIs != nil {
		t.Error("input UE must not be mutated")
	}
}

func TestPlanRestrictNothingToDo(t *testing.T) {
	ues := []*model.UE{{IMSI: "001010000000001"}, {IMSI: "001010000000002"}}
	plan := PlanRestrict(ues, []string{"001010000000001", "001010000000002"}, 1234, "00101")
	if len(plan.Modified) != 0 || len(plan.Originals) != 0 {
		t.Errorf("plan = %+v, want empty", plan)
	}
}

func TestPlanRelease(t *testing.T) {
	restricted := &model.UE{IMSI: "001010000000002", ForbiddenTAIs: tais("00101", []int{1234})}
	mixed := &model.UE{IMSI: "001010000000003", ForbiddenTAIs: tais("00101", []int{1234, 9})}
	clean := &model.UE{IMSI: "001010000000004"}

	modified := PlanRelease([]*model.UE{restricted, mixed, clean}, 1234, "00101")
	if len(modified) != 2 {
		t.Fatalf("len(modified) = %d, want 2", len(modified))
	}
	if modified[0].ForbiddenTAIs != nil {
		t.Errorf("restriction attribute should be dropped: %+v", modified[0].ForbiddenTAIs)
	}
	if diff := cmp.Diff(tais("00101", []int{9}), modified[1].ForbiddenTAIs); diff != "" {
		t.Errorf("mixed UE mismatch (-want +got):\n%s", diff)
	}
	if restricted.ForbiddenTAIs == nil {
		t.Error("input UE must not be mutated")
	}
}
