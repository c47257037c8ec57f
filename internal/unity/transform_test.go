package unity

import "testing"

func TestExtractGameObjects(t *testing.T) {
	text := "--- !u!1 &1\nGameObject:\n  m_Name: Player\n" +
		"--- !u!1 &2\nGameObject:\n  m_Name: \n" + // empty name: discarded
		"--- !u!1 &3\nGameObject:\n  m_Layer: 0\n" + // no name field: discarded
		"--- !u!4 &10\nTransform:\n  m_GameObject: {fileID: 1}\n"

	got := ExtractGameObjects(SplitRecords(text))
	if len(got) != 1 {
		t.Fatalf("got %d objects, want 1", len(got))
	}
	if got[0].FileID != "1" || got[0].Name != "Player" {
		t.Errorf("got %+v, want {1 Player}", got[0])
	}
}

func TestExtractTransforms(t *testing.T) {
	text := "--- !u!4 &10\nTransform:\n" +
		"  m_GameObject: {fileID: 1}\n" +
		"  m_Children:\n" +
		"  - {fileID: 20}\n" +
		"  - {fileID: 30}\n" +
		"  m_Father: {fileID: 0}\n" +
		"--- !u!224 &20\nRectTransform:\n" +
		"  m_GameObject: {fileID: 2}\n" +
		"  m_Father: {fileID: 10}\n" +
		"--- !u!4 &99\nTransform:\n" +
		"  m_LocalPosition: {x: 0, y: 0, z: 0}\n" // no owner: dropped

	got := ExtractTransforms(SplitRecords(text))
	if len(got) != 2 {
		t.Fatalf("got %d transforms, want 2", len(got))
	}

	first := got[0]
	if first.FileID != "10" || first.OwnerID != "1" || first.FatherID != NullFileID {
		t.Errorf("transform[0] = %+v", first)
	}
	if len(first.Children) != 2 || first.Children[0] != "20" || first.Children[1] != "30" {
		t.Errorf("transform[0].Children = %v, want [20 30]", first.Children)
	}

	second := got[1]
	if second.FileID != "20" || second.OwnerID != "2" || second.FatherID != "10" {
		t.Errorf("transform[1] = %+v", second)
	}
	if len(second.Children) != 0 {
		t.Errorf("transform[1].Children = %v, want none", second.Children)
	}
}

func TestRootOrder(t *testing.T) {
	records := SplitRecords(sampleScene)
	got := RootOrder(records)
	if len(got) != 1 || got[0] != "400010" {
		t.Errorf("RootOrder = %v, want [400010]", got)
	}

	noRoots := SplitRecords("--- !u!1 &1\nGameObject:\n  m_Name: X\n")
	if got := RootOrder(noRoots); got != nil {
		t.Errorf("RootOrder without section = %v, want nil", got)
	}
}
