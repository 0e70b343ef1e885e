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
	"strings"

	"gorm.io/gorm"
)

// CreatePlaylist makes a new empty playlist with a generated identity.
func (l *Library) CreatePlaylist(name string) (Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Playlist{}, ErrInvalidName
	}
	p := Playlist{Name: name}
	err := l.db.Create(&p).Error
	return p, err
}

// RenamePlaylist updates the playlist name. The library and favorites
// playlists keep their names.
func (l *Library) RenamePlaylist(p *Playlist, name string) error {
	if p.system() {
		return ErrProtectedPlaylist
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	err := l.db.Model(p).Update("name", name).Error
	if err == nil {
		p.Name = name
	}
	return err
}

// DeletePlaylist removes the playlist and its membership rows. Member songs
// stay in the catalog.
func (l *Library) DeletePlaylist(p *Playlist) error {
	if p.system() {
		return ErrProtectedPlaylist
	}
	return l.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(p).Association("Songs").Clear()
		if err != nil {
			return err
		}
		return tx.Unscoped().Delete(p).Error
	})
}

// AddSong adds a membership row. Adding a song twice is a no-op. The library
// playlist is populated by sync only.
func (l *Library) AddSong(p *Playlist, s Song) error {
	if p.ID == LibraryPlaylistID {
		return ErrProtectedPlaylist
	}
	if l.playlistMember(*p, s) {
		return nil
	}
	return l.db.Model(p).Association("Songs").Append(&s)
}

// RemoveSong removes a membership row, never the song. Removing a
// non-member is a no-op. Songs cannot be removed from the library playlist.
func (l *Library) RemoveSong(p *Playlist, s Song) error {
	if p.ID == LibraryPlaylistID {
		return ErrProtectedPlaylist
	}
	if !l.playlistMember(*p, s) {
		return nil
	}
	return l.db.Model(p).Association("Songs").Delete(&s)
}

// SongInPlaylist is a pure membership test. The library playlist implicitly
// contains every ingested song.
func (l *Library) SongInPlaylist(p Playlist, s Song) bool {
	if p.ID == LibraryPlaylistID {
		return l.songExists(s.SongID)
	}
	return l.playlistMember(p, s)
}

// Playlists returns all playlists with membership populated. The library
// playlist membership is computed from the song catalog, not stored.
func (l *Library) Playlists() []Playlist {
	playlists := []Playlist{}
	l.db.Preload("Songs").Order("id").Find(&playlists)
	for i := range playlists {
		if playlists[i].ID == LibraryPlaylistID {
			playlists[i].Songs = l.songs()
		}
	}
	return playlists
}

// PlaylistSongs returns the membership set of a single playlist.
func (l *Library) PlaylistSongs(p Playlist) []Song {
	if p.ID == LibraryPlaylistID {
		return l.songs()
	}
	return l.playlistSongs(p)
}

// LookupPlaylist finds a playlist by its record ID.
func (l *Library) LookupPlaylist(id uint) (Playlist, error) {
	return l.lookupPlaylist(id)
}
