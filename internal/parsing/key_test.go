package parsing

import "testing"

func TestCatalogKey(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		path    string
		want    string
		wantErr bool
	}{
		{
			name: "file under root",
			root: "/data/C64Music",
			path: "/data/C64Music/MUSICIANS/H/Hubbard_Rob/Commando.sid",
			want: "/MUSICIANS/H/Hubbard_Rob/Commando.sid",
		},
		{
			name: "root with trailing slash",
			root: "/data/C64Music/",
			path: "/data/C64Music/GAMES/A-F/Commando.sid",
			want: "/GAMES/A-F/Commando.sid",
		},
		{
			name: "already a key",
			root: "/data/C64Music",
			path: "/MUSICIANS/H/Hubbard_Rob/Commando.sid",
			want: "/MUSICIANS/H/Hubbard_Rob/Commando.sid",
		},
		{
			name: "no root",
			path: "/DEMOS/0-9/1.sid",
			want: "/DEMOS/0-9/1.sid",
		},
		{
			name: "relative to root",
			root: "/data/C64Music",
			path: "MUSICIANS/H/Hubbard_Rob/Commando.sid",
			want: "/MUSICIANS/H/Hubbard_Rob/Commando.sid",
		},
		{
			name: "relative with dot segments",
			root: "/data/C64Music",
			path: "./GAMES/../DEMOS/0-9/1.sid",
			want: "/DEMOS/0-9/1.sid",
		},
		{
			name:    "relative escaping root",
			root:    "/data/C64Music",
			path:    "../Commando.sid",
			wantErr: true,
		},
		{
			name:    "relative without root",
			path:    "MUSICIANS/Commando.sid",
			wantErr: true,
		},

		{
			name:    "empty",
			root:    "/data/C64Music",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CatalogKey(tt.root, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("CatalogKey(%q, %q) = %q, want error", tt.root, tt.path, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CatalogKey(%q, %q) error = %v", tt.root, tt.path, err)
			}
			if got != tt.want {
				t.Errorf("CatalogKey(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
			}
		})
	}
}
