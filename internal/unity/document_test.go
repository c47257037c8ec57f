package unity

import "testing"

const sampleScene = `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!29 &1
OcclusionCullingSettings:
  m_ObjectHideFlags: 0
--- !u!1 &1001
GameObject:
  serializedVersion: 6
  m_Component:
  - component: {fileID: 400010}
  m_Name: Player
--- !u!4 &400010
Transform:
  m_GameObject: {fileID: 1001}
  m_Father: {fileID: 0}
  m_Children:
  - {fileID: 400020}
--- !u!1660057539 &9223372036854775807
SceneRoots:
  m_ObjectHideFlags: 0
  m_Roots:
  - {fileID: 400010}
`

func TestSplitRecords(t *testing.T) {
	records := SplitRecords(sampleScene)

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	want := []struct {
		typeID int
		fileID string
		entity string
	}{
		{29, "1", "OcclusionCullingSettings"},
		{1, "1001", "GameObject"},
		{4, "400010", "Transform"},
		{1660057539, "9223372036854775807", "SceneRoots"},
	}

	for i, w := range want {
		if records[i].TypeID != w.typeID {
			t.Errorf("record[%d].TypeID = %d, want %d", i, records[i].TypeID, w.typeID)
		}
		if records[i].FileID != w.fileID {
			t.Errorf("record[%d].FileID = %q, want %q", i, records[i].FileID, w.fileID)
		}
		if got := records[i].Entity(); got != w.entity {
			t.Errorf("record[%d].Entity() = %q, want %q", i, got, w.entity)
		}
	}
}

func TestSplitRecordsDropsMalformedAndEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "malformed header dropped",
			text: "--- not a header\nGameObject:\n  m_Name: X\n--- !u!1 &2\nGameObject:\n  m_Name: Y\n",
			want: 1,
		},
		{
			name: "empty body dropped",
			text: "--- !u!1 &1\n\n   \n--- !u!1 &2\nGameObject:\n  m_Name: Y\n",
			want: 1,
		},
		{
			name: "missing file id dropped",
			text: "--- !u!1\nGameObject:\n  m_Name: X\n",
			want: 0,
		},
		{
			name: "empty input",
			text: "",
			want: 0,
		},
		{
			name: "stripped qualifier accepted",
			text: "--- !u!1 &100 stripped\nGameObject:\n  m_Name: Ghost\n",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRecords(tt.text)
			if len(got) != tt.want {
				t.Errorf("got %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestRecordScalar(t *testing.T) {
	records := SplitRecords(sampleScene)
	var obj *Record
	for i := range records {
		if records[i].Entity() == "GameObject" {
			obj = &records[i]
		}
	}
	if obj == nil {
		t.Fatal("no GameObject record found")
	}

	name, ok := obj.Scalar("m_Name")
	if !ok || name != "Player" {
		t.Errorf("Scalar(m_Name) = %q, %v; want Player, true", name, ok)
	}

	if _, ok := obj.Scalar("m_Missing"); ok {
		t.Error("Scalar on absent field should return ok=false")
	}
}

func TestScalarUnquotes(t *testing.T) {
	r := Record{Body: []string{"GameObject:", "  m_Name: 'Main Camera'"}}
	name, ok := r.Scalar("m_Name")
	if !ok || name != "Main Camera" {
		t.Errorf("got %q, %v; want quoted name stripped", name, ok)
	}
}

func TestFileIDList(t *testing.T) {
	r := Record{Body: []string{
		"Transform:",
		"  m_Children:",
		"  - {fileID: 20}",
		"  - {fileID: 30}",
		"  m_Father: {fileID: 0}",
	}}

	got := r.FileIDList("m_Children")
	if len(got) != 2 || got[0] != "20" || got[1] != "30" {
		t.Errorf("FileIDList = %v, want [20 30]", got)
	}

	if got := r.FileIDList("m_Roots"); got != nil {
		t.Errorf("FileIDList on absent block = %v, want nil", got)
	}
}

func TestFieldAssignment(t *testing.T) {
	tests := []struct {
		line      string
		wantName  string
		wantValue string
		wantOK    bool
	}{
		{"  m_Mesh: {fileID: 100, guid: abc123, type: 3}", "m_Mesh", "{fileID: 100, guid: abc123, type: 3}", true},
		{"  m_Children:", "", "", false},
		{"  - {fileID: 20}", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		name, value, ok := FieldAssignment(tt.line)
		if ok != tt.wantOK || name != tt.wantName || value != tt.wantValue {
			t.Errorf("FieldAssignment(%q) = %q, %q, %v; want %q, %q, %v",
				tt.line, name, value, ok, tt.wantName, tt.wantValue, tt.wantOK)
		}
	}
}
