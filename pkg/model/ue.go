package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// JSONメンバー名
const (
	ueFieldIMSI          = "imsi"
	ueFieldForbiddenTAIs = "forbidden_5gs_tais"
	taiFieldPLMN         = "plmn"
	taiFieldAreas        = "areas"
	areaFieldTACs        = "tacs"
)

// UE はRANエージェントが管理する加入者レコードを表す。
// 既知以外のメンバーは各階層のExtraにそのまま保持し、
// 読み出し→変更→書き戻しでエージェント側の項目を失わない。
type UE struct {
	IMSI          string
	ForbiddenTAIs []ForbiddenTAI
	Extra         map[string]json.RawMessage
}

// ForbiddenTAI はPLMNごとの接続禁止トラッキングエリアを表す。
type ForbiddenTAI struct {
	PLMN  string
	Areas []Area
	Extra map[string]json.RawMessage
}

// Area は禁止TACのグループを表す。
type Area struct {
	TACs  []int
	Extra map[string]json.RawMessage
}

// UnmarshalJSON はjson.Unmarshalerを実装する。
// imsiは文字列のほか数値でも受け付ける。
func (u *UE) UnmarshalJSON(data []byte) error {
	raw, err := decodeMembers(data)
	if err != nil {
		return err
	}

	var ue UE
	if v, ok := takeMember(raw, ueFieldIMSI); ok {
		if ue.IMSI, err = decodeIMSI(v); err != nil {
			return err
		}
	}
	if v, ok := takeMember(raw, ueFieldForbiddenTAIs); ok {
		if err := json.Unmarshal(v, &ue.ForbiddenTAIs); err != nil {
			return fmt.Errorf("ue %s: %w", ueFieldForbiddenTAIs, err)
		}
	}
	ue.Extra = extraOrNil(raw)
	*u = ue
	return nil
}

// MarshalJSON はjson.Marshalerを実装する。
// ForbiddenTAIsが空の場合はメンバー自体を出力しない。
func (u UE) MarshalJSON() ([]byte, error) {
	out := withExtra(u.Extra)
	out[ueFieldIMSI] = u.IMSI
	if len(u.ForbiddenTAIs) > 0 {
		out[ueFieldForbiddenTAIs] = u.ForbiddenTAIs
	}
	return json.Marshal(out)
}

// UnmarshalJSON はjson.Unmarshalerを実装する。
func (t *ForbiddenTAI) UnmarshalJSON(data []byte) error {
	raw, err := decodeMembers(data)
	if err != nil {
		return err
	}

	var tai ForbiddenTAI
	if v, ok := takeMember(raw, taiFieldPLMN); ok {
		if err := json.Unmarshal(v, &tai.PLMN); err != nil {
			return fmt.Errorf("tai %s: %w", taiFieldPLMN, err)
		}
	}
	if v, ok := takeMember(raw, taiFieldAreas); ok {
		if err := json.Unmarshal(v, &tai.Areas); err != nil {
			return fmt.Errorf("tai %s: %w", taiFieldAreas, err)
		}
	}
	tai.Extra = extraOrNil(raw)
	*t = tai
	return nil
}

// MarshalJSON はjson.Marshalerを実装する。
func (t ForbiddenTAI) MarshalJSON() ([]byte, error) {
	out := withExtra(t.Extra)
	out[taiFieldPLMN] = t.PLMN
	out[taiFieldAreas] = t.Areas
	return json.Marshal(out)
}

// UnmarshalJSON はjson.Unmarshalerを実装する。
func (a *Area) UnmarshalJSON(data []byte) error {
	raw, err := decodeMembers(data)
	if err != nil {
		return err
	}

	var area Area
	if v, ok := takeMember(raw, areaFieldTACs); ok {
		if err := json.Unmarshal(v, &area.TACs); err != nil {
			return fmt.Errorf("area %s: %w", areaFieldTACs, err)
		}
	}
	area.Extra = extraOrNil(raw)
	*a = area
	return nil
}

// MarshalJSON はjson.Marshalerを実装する。
func (a Area) MarshalJSON() ([]byte, error) {
	out := withExtra(a.Extra)
	out[areaFieldTACs] = a.TACs
	return json.Marshal(out)
}

// Clone はUEのディープコピーを返す。
func (u *UE) Clone() *UE {
	if u == nil {
		return nil
	}
	c := &UE{IMSI: u.IMSI, Extra: cloneExtra(u.Extra)}
	if u.ForbiddenTAIs != nil {
		c.ForbiddenTAIs = make([]ForbiddenTAI, len(u.ForbiddenTAIs))
		for i, tai := range u.ForbiddenTAIs {
			c.ForbiddenTAIs[i] = tai.clone()
		}
	}
	return c
}

func (t ForbiddenTAI) clone() ForbiddenTAI {
	c := ForbiddenTAI{PLMN: t.PLMN, Extra: cloneExtra(t.Extra)}
	if t.Areas != nil {
		c.Areas = make([]Area, len(t.Areas))
		for i, a := range t.Areas {
			c.Areas[i] = Area{TACs: slices.Clone(a.TACs), Extra: cloneExtra(a.Extra)}
		}
	}
	return c
}

// decodeIMSI はJSON文字列または数値のIMSIを文字列として返す。
func decodeIMSI(v json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) > 0 && trimmed[0] != '"' && !bytes.Equal(trimmed, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return "", fmt.Errorf("ue %s: %w", ueFieldIMSI, err)
		}
		return n.String(), nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", fmt.Errorf("ue %s: %w", ueFieldIMSI, err)
	}
	return s, nil
}

func decodeMembers(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func takeMember(raw map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	v, ok := raw[name]
	if ok {
		delete(raw, name)
	}
	return v, ok
}

func extraOrNil(raw map[string]json.RawMessage) map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

func withExtra(extra map[string]json.RawMessage) map[string]any {
	out := make(map[string]any, len(extra)+2)
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func cloneExtra(extra map[string]json.RawMessage) map[string]json.RawMessage {
	if extra == nil {
		return nil
	}
	c := make(map[string]json.RawMessage, len(extra))
	for k, v := range extra {
		c[k] = slices.Clone(v)
	}
	return c
}
