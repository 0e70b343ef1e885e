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
)

func TestArtistFromResult(t *testing.T) {
	artist, err := artistFromResult(testResult())
	if err != nil {
		t.Fatal(err)
	}
	if artist.ArtistID != 7 || artist.Name != "Test Artist" || artist.Country != "USA" {
		t.Errorf("bad artist %+v", artist)
	}

	r := testResult()
	r.ArtistID = 0
	if _, err := artistFromResult(r); !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("missing id: expected ErrMissingRequiredField, got %v", err)
	}
	r = testResult()
	r.ArtistName = ""
	if _, err := artistFromResult(r); !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("missing name: expected ErrMissingRequiredField, got %v", err)
	}
}

func TestAlbumFromResult(t *testing.T) {
	artist, _ := artistFromResult(testResult())
	album, err := albumFromResult(testResult(), artist)
	if err != nil {
		t.Fatal(err)
	}
	if album.AlbumID != 42 || album.Name != "Test Album" || album.Genre != "Rock" {
		t.Errorf("bad album %+v", album)
	}
	if album.Year != 2020 {
		t.Errorf("bad year %d", album.Year)
	}
	if album.ArtistID != artist.ArtistID {
		t.Error("album does not reference its artist")
	}
	if album.Cover != nil {
		t.Error("cover should be absent until resolved")
	}

	r := testResult()
	r.CollectionName = ""
	if _, err := albumFromResult(r, artist); !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestSongFromResult(t *testing.T) {
	artist, _ := artistFromResult(testResult())
	album, _ := albumFromResult(testResult(), artist)
	song, err := songFromResult(testResult(), album)
	if err != nil {
		t.Fatal(err)
	}
	if song.SongID != 100 || song.Title != "Test Song" || song.LengthMillis != 200000 {
		t.Errorf("bad song %+v", song)
	}
	if song.AlbumID != album.AlbumID {
		t.Error("song does not reference its album")
	}

	r := testResult()
	r.TrackID = 0
	if _, err := songFromResult(r, album); !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("expected ErrMissingRequiredField, got %v", err)
	}
}

// Identity is the external id alone; other fields don't matter and the zero
// id never matches.
func TestIdentityEquality(t *testing.T) {
	a := Artist{ArtistID: 7, Name: "Test Artist"}
	b := Artist{ArtistID: 7, Name: "Renamed", Country: "SE"}
	if !a.SameArtist(b) {
		t.Error("same id should be the same entity")
	}
	if a.SameArtist(Artist{ArtistID: 8, Name: "Test Artist"}) {
		t.Error("different ids are different entities")
	}
	if (Artist{}).SameArtist(Artist{}) {
		t.Error("zero ids never match")
	}

	if !(Album{AlbumID: 42}).SameAlbum(Album{AlbumID: 42, Name: "x"}) {
		t.Error("same album id should be the same entity")
	}
	if (Album{}).SameAlbum(Album{}) {
		t.Error("zero album ids never match")
	}
	if !(Song{SongID: 100}).SameSong(Song{SongID: 100, Title: "x"}) {
		t.Error("same song id should be the same entity")
	}
	if (Song{}).SameSong(Song{}) {
		t.Error("zero song ids never match")
	}
}
