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

// Per-entity storage contracts. A Library satisfies all of them; callers
// outside the package (CLI, UI) should depend on these rather than on
// Library itself. Save on an identity that already exists is undefined;
// check the Exists method first, the database also enforces identity
// uniqueness as a constraint.

type ArtistRepo interface {
	ArtistExists(id int64) bool
	ArtistCount() int64
	CreateArtist(a *Artist) error
	Artists() []Artist
	AlbumsFor(a Artist) []Album
	LookupArtist(id int64) (Artist, error)
	DeleteArtist(a Artist) error
}

type AlbumRepo interface {
	AlbumExists(id int64) bool
	AlbumCount() int64
	CreateAlbum(a *Album) error
	Albums() []Album
	SongsFor(a Album) []Song
	LookupAlbum(id int64) (Album, error)
}

type SongRepo interface {
	SongExists(id int64) bool
	SongCount() int64
	CreateSong(s *Song) error
	Songs() []Song
	LookupSong(id int64) (Song, error)
}

type PlaylistRepo interface {
	CreatePlaylist(name string) (Playlist, error)
	RenamePlaylist(p *Playlist, name string) error
	DeletePlaylist(p *Playlist) error
	AddSong(p *Playlist, s Song) error
	RemoveSong(p *Playlist, s Song) error
	SongInPlaylist(p Playlist, s Song) bool
	Playlists() []Playlist
	PlaylistSongs(p Playlist) []Song
	LookupPlaylist(id uint) (Playlist, error)
}

var _ ArtistRepo = (*Library)(nil)
var _ AlbumRepo = (*Library)(nil)
var _ SongRepo = (*Library)(nil)
var _ PlaylistRepo = (*Library)(nil)

func (l *Library) ArtistExists(id int64) bool {
	return l.artistExists(id)
}

func (l *Library) ArtistCount() int64 {
	return l.artistCount()
}

func (l *Library) CreateArtist(a *Artist) error {
	return l.createArtist(a)
}

func (l *Library) Artists() []Artist {
	return l.artists()
}

func (l *Library) AlbumsFor(a Artist) []Album {
	return l.artistAlbums(a)
}

func (l *Library) LookupArtist(id int64) (Artist, error) {
	return l.lookupArtist(id)
}

func (l *Library) DeleteArtist(a Artist) error {
	return l.deleteArtist(a)
}

func (l *Library) AlbumExists(id int64) bool {
	return l.albumExists(id)
}

func (l *Library) AlbumCount() int64 {
	return l.albumCount()
}

func (l *Library) CreateAlbum(a *Album) error {
	return l.createAlbum(a)
}

func (l *Library) Albums() []Album {
	return l.albums()
}

func (l *Library) SongsFor(a Album) []Song {
	return l.albumSongs(a)
}

func (l *Library) LookupAlbum(id int64) (Album, error) {
	return l.lookupAlbum(id)
}

func (l *Library) SongExists(id int64) bool {
	return l.songExists(id)
}

func (l *Library) SongCount() int64 {
	return l.songCount()
}

func (l *Library) CreateSong(s *Song) error {
	return l.createSong(s)
}

func (l *Library) Songs() []Song {
	return l.songs()
}

func (l *Library) LookupSong(id int64) (Song, error) {
	return l.lookupSong(id)
}
