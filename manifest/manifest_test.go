/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"

	dcerrors "github.com/suparena/datacombine/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []Region
		wantErr bool
	}{
		{
			name: "string entries",
			data: `["na", "eu"]`,
			want: []Region{{ID: "na"}, {ID: "eu"}},
		},
		{
			name: "object entries",
			data: `[{"na": [7, 8, 9]}, {"eu": [2]}]`,
			want: []Region{{ID: "na", Basins: []int{7, 8, 9}}, {ID: "eu", Basins: []int{2}}},
		},
		{
			name: "mixed entries",
			data: `["as", {"na": [7, 8, 9]}]`,
			want: []Region{{ID: "as"}, {ID: "na", Basins: []int{7, 8, 9}}},
		},
		{
			name: "duplicate region keeps first entry",
			data: `[{"na": [7]}, "eu", {"na": [8, 9]}]`,
			want: []Region{{ID: "na", Basins: []int{7}}, {ID: "eu"}},
		},
		{
			name: "empty manifest",
			data: `[]`,
			want: nil,
		},
		{
			name:    "top-level object rejected",
			data:    `{"na": [7]}`,
			wantErr: true,
		},
		{
			name:    "null rejected",
			data:    `null`,
			wantErr: true,
		},
		{
			name:    "numeric entry rejected",
			data:    `[7]`,
			wantErr: true,
		},
		{
			name:    "empty region code rejected",
			data:    `[""]`,
			wantErr: true,
		},
		{
			name:    "multi-key object rejected",
			data:    `[{"na": [7], "eu": [2]}]`,
			wantErr: true,
		},
		{
			name:    "invalid JSON rejected",
			data:    `["na",`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected parse error for %s, got none", tt.data)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d regions, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i].ID != tt.want[i].ID {
					t.Errorf("Expected region %q at position %d, got %q", tt.want[i].ID, i, got[i].ID)
				}
				if len(got[i].Basins) != len(tt.want[i].Basins) {
					t.Errorf("Expected %d basins for %q, got %d", len(tt.want[i].Basins), got[i].ID, len(got[i].Basins))
					continue
				}
				for j := range got[i].Basins {
					if got[i].Basins[j] != tt.want[i].Basins[j] {
						t.Errorf("Expected basin %d for %q, got %d", tt.want[i].Basins[j], got[i].ID, got[i].Basins[j])
					}
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads manifest from disk", func(t *testing.T) {
		fsys := billy.NewInMemoryFS()
		if err := fsys.WriteFile("/data/continent.json", []byte(`["na", "eu"]`), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		regions, err := Load(fsys, "/data/continent.json")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(regions) != 2 {
			t.Fatalf("Expected 2 regions, got %d", len(regions))
		}
	})

	t.Run("missing manifest is a manifest error", func(t *testing.T) {
		fsys := billy.NewInMemoryFS()

		_, err := Load(fsys, "/data/continent.json")
		if err == nil {
			t.Fatal("Expected error for missing manifest, got none")
		}
		if !dcerrors.IsBadManifest(err) {
			t.Errorf("Expected a manifest error, got %v", err)
		}
	})

	t.Run("unparseable manifest is a manifest error", func(t *testing.T) {
		fsys := billy.NewInMemoryFS()
		if err := fsys.WriteFile("/data/continent.json", []byte(`{"na":`), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		_, err := Load(fsys, "/data/continent.json")
		if err == nil {
			t.Fatal("Expected error for unparseable manifest, got none")
		}
		if !dcerrors.IsBadManifest(err) {
			t.Errorf("Expected a manifest error, got %v", err)
		}
	})
}

func TestWrite(t *testing.T) {
	fsys := billy.NewInMemoryFS()
	regions := []Region{
		{ID: "na", Basins: []int{7, 8, 9}},
		{ID: "eu"},
	}

	if err := Write(fsys, "/data/continent.json", regions); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := fsys.ReadFile("/data/continent.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	// Round-trip: the written manifest parses back to the same regions,
	// with unknown basins normalized to an empty list.
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of written manifest failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(got))
	}
	if got[0].ID != "na" || len(got[0].Basins) != 3 {
		t.Errorf("Expected na with 3 basins, got %+v", got[0])
	}
	if got[1].ID != "eu" || len(got[1].Basins) != 0 {
		t.Errorf("Expected eu with no basins, got %+v", got[1])
	}
}
