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
	"fmt"

	"mypod/lib/gorm"
	"mypod/lib/itunes"
)

// Reserved playlists, created on first open and protected from rename and
// delete. The library playlist holds every ingested song.
const (
	LibraryPlaylistID   uint = 1
	FavoritesPlaylistID uint = 2
)

// Artist from the iTunes catalog. ArtistID is the stable external identity;
// two artists are the same entity iff their ArtistIDs match. Albums reference
// their artist by ArtistID, the artist owns them for cascade delete.
type Artist struct {
	gorm.Model
	ArtistID int64 `gorm:"uniqueIndex:idx_artist_id"`
	Name     string
	Country  string
}

// SameArtist is identity equality on the external id alone. A zero id never
// matches anything.
func (a Artist) SameArtist(o Artist) bool {
	return a.ArtistID != 0 && a.ArtistID == o.ArtistID
}

// Album from the iTunes catalog. Belongs to exactly one artist via the
// external ArtistID. Cover is optional artwork; absence is a valid permanent
// state.
type Album struct {
	gorm.Model
	AlbumID    int64 `gorm:"uniqueIndex:idx_album_id"`
	ArtistID   int64 `gorm:"index:idx_album_artist"`
	Name       string
	Genre      string
	Year       int
	TrackCount int
	Cover      []byte `json:"-"`
}

func (a Album) SameAlbum(o Album) bool {
	return a.AlbumID != 0 && a.AlbumID == o.AlbumID
}

// Song from the iTunes catalog. Belongs to exactly one album via the external
// AlbumID; never reassigned once persisted.
type Song struct {
	gorm.Model
	SongID       int64 `gorm:"uniqueIndex:idx_song_id"`
	AlbumID      int64 `gorm:"index:idx_song_album"`
	Title        string
	LengthMillis int64
	PreviewURL   string
}

func (s Song) SameSong(o Song) bool {
	return s.SongID != 0 && s.SongID == o.SongID
}

// Playlist with a locally generated identity and an unordered set of member
// songs. Membership rows live in playlist_songs; deleting a playlist removes
// the rows, never the songs.
type Playlist struct {
	gorm.Model
	Name  string
	Songs []Song `gorm:"many2many:playlist_songs"`
}

func (p Playlist) system() bool {
	return p.ID == LibraryPlaylistID || p.ID == FavoritesPlaylistID
}

func artistFromResult(r itunes.Result) (Artist, error) {
	if r.ArtistID == 0 || r.ArtistName == "" {
		return Artist{}, fmt.Errorf("%w: artist id, name", ErrMissingRequiredField)
	}
	return Artist{
		ArtistID: r.ArtistID,
		Name:     r.ArtistName,
		Country:  r.Country,
	}, nil
}

func albumFromResult(r itunes.Result, artist Artist) (Album, error) {
	if r.CollectionID == 0 || r.CollectionName == "" {
		return Album{}, fmt.Errorf("%w: album id, name", ErrMissingRequiredField)
	}
	return Album{
		AlbumID:    r.CollectionID,
		ArtistID:   artist.ArtistID,
		Name:       r.CollectionName,
		Genre:      r.PrimaryGenreName,
		Year:       r.ReleaseYear(),
		TrackCount: r.TrackCount,
	}, nil
}

func songFromResult(r itunes.Result, album Album) (Song, error) {
	if r.TrackID == 0 || r.TrackName == "" {
		return Song{}, fmt.Errorf("%w: song id, title", ErrMissingRequiredField)
	}
	return Song{
		SongID:       r.TrackID,
		AlbumID:      album.AlbumID,
		Title:        r.TrackName,
		LengthMillis: r.TrackTimeMillis,
		PreviewURL:   r.PreviewURL,
	}, nil
}
