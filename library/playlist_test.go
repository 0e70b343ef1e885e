// Copyright (C) 2026 The MyPod Authors.
//
// This file is part of MyPod.
//
// MyPod is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// MyPod is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with MyPod.  If not, see <https://www.gnu.org/licenses/>.

package library

import (
	"errors"
	"testing"

	"mypod/lib/itunes"
)

func ingestTestSong(t *testing.T, l *Library) Song {
	useCatalog(l, &fakeCatalog{
		results: map[string][]itunes.Result{
			"test artist": {testResult()},
		},
	}, "test artist")
	if err := l.Sync(); err != nil {
		t.Fatal(err)
	}
	song, err := l.LookupSong(100)
	if err != nil {
		t.Fatal(err)
	}
	return song
}

func TestSystemPlaylists(t *testing.T) {
	l := testLibrary(t)
	playlists := l.Playlists()
	if len(playlists) != 2 {
		t.Fatalf("got %d playlists", len(playlists))
	}
	if playlists[0].ID != LibraryPlaylistID || playlists[0].Name != "Library" {
		t.Errorf("bad library playlist %+v", playlists[0])
	}
	if playlists[1].ID != FavoritesPlaylistID || playlists[1].Name != "Favorites" {
		t.Errorf("bad favorites playlist %+v", playlists[1])
	}
}

// Reopening doesn't reseed.
func TestSystemPlaylistsOnce(t *testing.T) {
	l := testLibrary(t)
	l.Close()
	l2 := NewLibrary(l.config)
	if err := l2.Open(); err != nil {
		t.Fatal(err)
	}
	defer l2.Close()
	if n := len(l2.Playlists()); n != 2 {
		t.Errorf("got %d playlists after reopen", n)
	}
}

func TestCreatePlaylist(t *testing.T) {
	l := testLibrary(t)
	p, err := l.CreatePlaylist("Road Trip")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == 0 || p.ID == LibraryPlaylistID || p.ID == FavoritesPlaylistID {
		t.Errorf("bad playlist id %d", p.ID)
	}
	if p.Name != "Road Trip" {
		t.Errorf("bad name %s", p.Name)
	}
	if songs := l.PlaylistSongs(p); len(songs) != 0 {
		t.Errorf("new playlist not empty: %d songs", len(songs))
	}
}

func TestCreatePlaylistInvalidName(t *testing.T) {
	l := testLibrary(t)
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := l.CreatePlaylist(name)
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestRenamePlaylist(t *testing.T) {
	l := testLibrary(t)
	p, _ := l.CreatePlaylist("Road Trip")
	if err := l.RenamePlaylist(&p, "Long Drive"); err != nil {
		t.Fatal(err)
	}
	found, err := l.LookupPlaylist(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found.Name != "Long Drive" {
		t.Errorf("rename not persisted, got %s", found.Name)
	}

	if err := l.RenamePlaylist(&p, "  "); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestProtectedPlaylists(t *testing.T) {
	l := testLibrary(t)
	for _, id := range []uint{LibraryPlaylistID, FavoritesPlaylistID} {
		p, err := l.LookupPlaylist(id)
		if err != nil {
			t.Fatal(err)
		}
		name := p.Name
		if err := l.RenamePlaylist(&p, "Renamed"); !errors.Is(err, ErrProtectedPlaylist) {
			t.Errorf("rename %d: expected ErrProtectedPlaylist, got %v", id, err)
		}
		if err := l.DeletePlaylist(&p); !errors.Is(err, ErrProtectedPlaylist) {
			t.Errorf("delete %d: expected ErrProtectedPlaylist, got %v", id, err)
		}
		found, err := l.LookupPlaylist(id)
		if err != nil {
			t.Fatalf("playlist %d gone after rejected delete", id)
		}
		if found.Name != name {
			t.Errorf("playlist %d renamed to %s after rejected rename", id, found.Name)
		}
	}
}

func TestLibraryPlaylistMembership(t *testing.T) {
	l := testLibrary(t)
	song := ingestTestSong(t, l)

	p, err := l.LookupPlaylist(LibraryPlaylistID)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.AddSong(&p, song); !errors.Is(err, ErrProtectedPlaylist) {
		t.Errorf("add: expected ErrProtectedPlaylist, got %v", err)
	}
	if err := l.RemoveSong(&p, song); !errors.Is(err, ErrProtectedPlaylist) {
		t.Errorf("remove: expected ErrProtectedPlaylist, got %v", err)
	}
	// implicit membership of ingested songs
	if !l.SongInPlaylist(p, song) {
		t.Error("ingested song not in library playlist")
	}
	if songs := l.PlaylistSongs(p); len(songs) != 1 {
		t.Errorf("library playlist has %d songs", len(songs))
	}
}

func TestFavoritesMutable(t *testing.T) {
	l := testLibrary(t)
	song := ingestTestSong(t, l)

	p, err := l.LookupPlaylist(FavoritesPlaylistID)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.AddSong(&p, song); err != nil {
		t.Fatal(err)
	}
	if !l.SongInPlaylist(p, song) {
		t.Error("song not in favorites after add")
	}
}

func TestMembershipIdempotent(t *testing.T) {
	l := testLibrary(t)
	song := ingestTestSong(t, l)
	p, _ := l.CreatePlaylist("Road Trip")

	if err := l.AddSong(&p, song); err != nil {
		t.Fatal(err)
	}
	if err := l.AddSong(&p, song); err != nil {
		t.Fatal(err)
	}
	if songs := l.PlaylistSongs(p); len(songs) != 1 {
		t.Errorf("expected one membership link, got %d", len(songs))
	}

	if err := l.RemoveSong(&p, song); err != nil {
		t.Fatal(err)
	}
	if l.SongInPlaylist(p, song) {
		t.Error("song still a member after remove")
	}
	// removing a non-member is a no-op
	if err := l.RemoveSong(&p, song); err != nil {
		t.Fatal(err)
	}
}

func TestPlaylistLifecycle(t *testing.T) {
	l := testLibrary(t)
	song := ingestTestSong(t, l)

	p, err := l.CreatePlaylist("Road Trip")
	if err != nil {
		t.Fatal(err)
	}
	if err := l.AddSong(&p, song); err != nil {
		t.Fatal(err)
	}
	if !l.SongInPlaylist(p, song) {
		t.Error("expected membership after add")
	}
	if err := l.RemoveSong(&p, song); err != nil {
		t.Fatal(err)
	}
	if l.SongInPlaylist(p, song) {
		t.Error("expected no membership after remove")
	}
	if err := l.DeletePlaylist(&p); err != nil {
		t.Fatal(err)
	}
	for _, pl := range l.Playlists() {
		if pl.ID == p.ID {
			t.Error("deleted playlist still listed")
		}
	}
	// the song survives its playlist
	if !l.SongExists(song.SongID) {
		t.Error("song deleted with playlist")
	}
}

func TestDeletePlaylistKeepsSongs(t *testing.T) {
	l := testLibrary(t)
	song := ingestTestSong(t, l)
	p, _ := l.CreatePlaylist("Road Trip")
	if err := l.AddSong(&p, song); err != nil {
		t.Fatal(err)
	}
	if err := l.DeletePlaylist(&p); err != nil {
		t.Fatal(err)
	}
	if l.SongCount() != 1 {
		t.Error("playlist delete removed songs")
	}
	if _, err := l.LookupPlaylist(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
