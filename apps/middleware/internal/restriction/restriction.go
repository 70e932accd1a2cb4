// Package restriction は加入者ごとの接続禁止TAC（forbidden_5gs_tais）を計算する。
// 入出力を持たない純粋な処理のみを提供する。
package restriction

import (
	"slices"

	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// Add はUEのplmnエントリにtacを禁止TACとして追加する。
// 同じPLMNのエントリが複数あっても、いずれかのエリアに含まれていれば何もしない。
// PLMNエントリやエリアが無ければ作成する。変更があればtrueを返す。
func Add(ue *model.UE, tac int, plmn string) bool {
	first := -1
	for i, tai := range ue.ForbiddenTAIs {
		if tai.PLMN != plmn {
			continue
		}
		if first < 0 {
			first = i
		}
		for _, area := range tai.Areas {
			if slices.Contains(area.TACs, tac) {
				return false
			}
		}
	}

	if first < 0 {
		ue.ForbiddenTAIs = append(ue.ForbiddenTAIs, model.ForbiddenTAI{
			PLMN:  plmn,
			Areas: []model.Area{{TACs: []int{tac}}},
		})
		return true
	}

	tai := &ue.ForbiddenTAIs[first]
	if len(tai.Areas) == 0 {
		tai.Areas = []model.Area{{TACs: []int{tac}}}
		return true
	}
	tai.Areas[0].TACs = append(tai.Areas[0].TACs, tac)
	return true
}

// Remove はUEのplmnエントリからtacを取り除く。
// 取り除いた結果空になったエリア、エリアの無くなったPLMNエントリ、
// エントリの無くなった禁止リスト自体も削除する。変更があればtrueを返す。
func Remove(ue *model.UE, tac int, plmn string) bool {
	changed := false
	tais := make([]model.ForbiddenTAI, 0, len(ue.ForbiddenTAIs))
	for _, tai := range ue.ForbiddenTAIs {
		if tai.PLMN != plmn {
			tais = append(tais, tai)
			continue
		}

		taiChanged := false
		areas := make([]model.Area, 0, len(tai.Areas))
		for _, area := range tai.Areas {
			if !slices.Contains(area.TACs, tac) {
				areas = append(areas, area)
				continue
			}
			taiChanged = true
			rest := slices.DeleteFunc(slices.Clone(area.TACs), func(t int) bool { return t == tac })
			if len(rest) > 0 {
				area.TACs = rest
				areas = append(areas, area)
			}
		}
		if !taiChanged {
			tais = append(tais, tai)
			continue
		}

		changed = true
		if len(areas) > 0 {
			tai.Areas = areas
			tais = append(tais, tai)
		}
	}

	if !changed {
		return false
	}
	if len(tais) == 0 {
		ue.ForbiddenTAIs = nil
	} else {
		ue.ForbiddenTAIs = tais
	}
	return true
}

// Plan は制限追加の計算結果。
type Plan struct {
	Modified  []*model.UE // 制限を追加したUE（書き戻し対象）
	Originals []*model.UE // Modifiedに対応する追加前のUE
}

// PlanRestrict はテナントに含まれないUEにtacの禁止を追加した結果を計算する。
// テナントの判定はIMSIの完全一致で行い、正規化はしない。
// 入力のUEは変更しない。
func PlanRestrict(ues []*model.UE, tenantIMSIs []string, tac int, plmn string) *Plan {
	tenant := make(map[string]struct{}, len(tenantIMSIs))
	for _, imsi := range tenantIMSIs {
		tenant[imsi] = struct{}{}
	}

	plan := &Plan{}
	for _, ue := range ues {
		if ue == nil {
			continue
		}
		if _, ok := tenant[ue.IMSI]; ok {
			continue
		}
		updated := ue.Clone()
		if Add(updated, tac, plmn) {
			plan.Modified = append(plan.Modified, updated)
			plan.Originals = append(plan.Originals, ue.Clone())
		}
	}
	return plan
}

// PlanRelease は全UEからtacの禁止を取り除いた結果のうち、変更されたUEのみを返す。
// 入力のUEは変更しない。
func PlanRelease(ues []*model.UE, tac int, plmn string) []*model.UE {
	var modified []*model.UE
	for _, ue := range ues {
		if ue == nil {
			continue
		}
		updated := ue.Clone()
		if Remove(updated, tac, plmn) {
			modified = append(modified, updated)
		}
	}
	return modified
}
