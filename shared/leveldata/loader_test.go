package leveldata

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadAllLevelsEmbedded(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("../../assets"), "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}

	if got := strings.Join(names, ","); got != "desert,earth,forest" {
		t.Fatalf("names = %s", got)
	}

	tests := []struct {
		name    string
		enemies int
		exits   []Exit
	}{
		{"forest", 4, []Exit{{SideRight, "earth"}}},
		{"earth", 3, []Exit{{SideRight, "desert"}, {SideLeft, "forest"}}},
		{"desert", 2, []Exit{{SideLeft, "earth"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := levels[tt.name]
			if d == nil {
				t.Fatalf("level %s missing", tt.name)
			}
			if len(d.Platforms) != 10 {
				t.Errorf("platforms = %d, want 10", len(d.Platforms))
			}
			for i, p := range d.Platforms {
				want := SolidRect{X: float64(i * 200), Y: 550, W: 200, H: 50}
				if p != want {
					t.Errorf("platform %d = %+v, want %+v", i, p, want)
				}
			}
			if d.Width() != 2000 {
				t.Errorf("width = %v, want 2000", d.Width())
			}
			if d.EnemyZone != (SpawnZone{X: 200, Y: 500, W: 1600, Count: tt.enemies}) {
				t.Errorf("enemy zone = %+v", d.EnemyZone)
			}
			if len(d.Exits) != len(tt.exits) {
				t.Fatalf("exits = %+v, want %+v", d.Exits, tt.exits)
			}
			for i := range tt.exits {
				if d.Exits[i] != tt.exits[i] {
					t.Errorf("exit %d = %+v, want %+v", i, d.Exits[i], tt.exits[i])
				}
			}
		})
	}
}

const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
`

func TestLoadLevelDataErrors(t *testing.T) {
	platform := ` <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="100" width="160" height="20"/>
 </objectgroup>
`
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "no platforms",
			body:    "",
			wantErr: "no platforms",
		},
		{
			name: "bad exit side",
			body: platform + ` <objectgroup id="2" name="Exits">
  <object id="2" name="up" x="0" y="0" width="10" height="10">
   <properties><property name="target" value="b"/></properties>
  </object>
 </objectgroup>
`,
			wantErr: "has side",
		},
		{
			name: "exit without target",
			body: platform + ` <objectgroup id="2" name="Exits">
  <object id="2" name="left" x="0" y="0" width="10" height="10"/>
 </objectgroup>
`,
			wantErr: "no target",
		},
		{
			name: "negative enemy count",
			body: platform + ` <objectgroup id="2" name="EnemySpawn">
  <object id="2" x="0" y="0" width="10" height="10">
   <properties><property name="count" type="int" value="-1"/></properties>
  </object>
 </objectgroup>
`,
			wantErr: "negative enemy count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"a.tmx": {Data: []byte(tmxHeader + tt.body + "</map>\n")},
			}
			_, err := LoadLevelData(fsys, "a.tmx")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAllLevelsUnknownTarget(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/a.tmx": {Data: []byte(tmxHeader + ` <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="100" width="160" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="Exits">
  <object id="2" name="right" x="150" y="0" width="10" height="10">
   <properties><property name="target" value="nowhere"/></properties>
  </object>
 </objectgroup>
</map>
`)},
	}
	if _, _, err := LoadAllLevels(fsys, "levels"); err == nil || !strings.Contains(err.Error(), "unknown level") {
		t.Fatalf("err = %v, want unknown level error", err)
	}
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
