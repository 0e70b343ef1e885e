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

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func (l *Library) openDB() (err error) {
	var glog logger.Interface
	if l.config.Library.DB.LogMode == false {
		glog = logger.Discard
	} else {
		glog = logger.Default
	}
	cfg := &gorm.Config{
		Logger: glog,
	}

	switch l.config.Library.DB.Driver {
	case "sqlite3":
		l.db, err = gorm.Open(sqlite.Open(l.config.Library.DB.Source), cfg)
	case "mysql":
		l.db, err = gorm.Open(mysql.Open(l.config.Library.DB.Source), cfg)
	case "postgres":
		l.db, err = gorm.Open(postgres.Open(l.config.Library.DB.Source), cfg)
	default:
		err = errors.New("driver not supported")
	}

	if err != nil {
		return
	}

	err = l.db.AutoMigrate(&Artist{}, &Album{}, &Song{}, &Playlist{})
	return
}

func (l *Library) closeDB() {
	conn, err := l.db.DB()
	if err != nil {
		return
	}
	conn.Close()
}

// The library and favorites playlists are created once, on an empty playlists
// table, so they receive record IDs 1 and 2.
func (l *Library) createSystemPlaylists() error {
	if l.playlistCount() > 0 {
		return nil
	}
	for _, name := range []string{"Library", "Favorites"} {
		err := l.db.Create(&Playlist{Name: name}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Library) artistCount() int64 {
	var count int64
	l.db.Model(&Artist{}).Count(&count)
	return count
}

func (l *Library) albumCount() int64 {
	var count int64
	l.db.Model(&Album{}).Count(&count)
	return count
}

func (l *Library) songCount() int64 {
	var count int64
	l.db.Model(&Song{}).Count(&count)
	return count
}

func (l *Library) playlistCount() int64 {
	var count int64
	l.db.Model(&Playlist{}).Count(&count)
	return count
}

// Existence checks are aggregate counts, not row fetches.

func (l *Library) artistExists(id int64) bool {
	var count int64
	l.db.Model(&Artist{}).Where("artist_id = ?", id).Count(&count)
	return count > 0
}

func (l *Library) albumExists(id int64) bool {
	var count int64
	l.db.Model(&Album{}).Where("album_id = ?", id).Count(&count)
	return count > 0
}

func (l *Library) songExists(id int64) bool {
	var count int64
	l.db.Model(&Song{}).Where("song_id = ?", id).Count(&count)
	return count > 0
}

func (l *Library) createArtist(a *Artist) error {
	return l.db.Create(a).Error
}

func (l *Library) createAlbum(a *Album) error {
	return l.db.Create(a).Error
}

func (l *Library) createSong(s *Song) error {
	return l.db.Create(s).Error
}

func (l *Library) artists() []Artist {
	var artists []Artist
	l.db.Order("name").Find(&artists)
	return artists
}

func (l *Library) albums() []Album {
	var albums []Album
	l.db.Order("name").Find(&albums)
	return albums
}

func (l *Library) songs() []Song {
	var songs []Song
	l.db.Order("title").Find(&songs)
	return songs
}

func (l *Library) artistAlbums(a Artist) []Album {
	albums := []Album{}
	if a.ArtistID == 0 {
		return albums
	}
	l.db.Where("artist_id = ?", a.ArtistID).Order("year, name").Find(&albums)
	return albums
}

func (l *Library) albumSongs(a Album) []Song {
	songs := []Song{}
	if a.AlbumID == 0 {
		return songs
	}
	l.db.Where("album_id = ?", a.AlbumID).Order("title").Find(&songs)
	return songs
}

func (l *Library) lookupArtist(id int64) (Artist, error) {
	var artist Artist
	err := l.db.Where("artist_id = ?", id).First(&artist).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return Artist{}, ErrNotFound
	}
	return artist, err
}

func (l *Library) lookupAlbum(id int64) (Album, error) {
	var album Album
	err := l.db.Where("album_id = ?", id).First(&album).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return Album{}, ErrNotFound
	}
	return album, err
}

func (l *Library) lookupSong(id int64) (Song, error) {
	var song Song
	err := l.db.Where("song_id = ?", id).First(&song).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return Song{}, ErrNotFound
	}
	return song, err
}

func (l *Library) lookupPlaylist(id uint) (Playlist, error) {
	var playlist Playlist
	err := l.db.First(&playlist, id).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return Playlist{}, ErrNotFound
	}
	return playlist, err
}

// The artist owns its albums and they own their songs. Deleting an artist
// removes the whole subtree along with any membership rows for the deleted
// songs. Playlists themselves are untouched.
func (l *Library) deleteArtist(a Artist) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		var albums []Album
		tx.Where("artist_id = ?", a.ArtistID).Find(&albums)
		for _, album := range albums {
			var songs []Song
			tx.Where("album_id = ?", album.AlbumID).Find(&songs)
			for i := range songs {
				err := tx.Exec("delete from playlist_songs where song_id = ?",
					songs[i].ID).Error
				if err != nil {
					return err
				}
				err = tx.Unscoped().Delete(&songs[i]).Error
				if err != nil {
					return err
				}
			}
			err := tx.Unscoped().Delete(&album).Error
			if err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&a).Error
	})
}

func (l *Library) playlistMember(p Playlist, s Song) bool {
	var count int64
	l.db.Table("playlist_songs").
		Where("playlist_id = ? and song_id = ?", p.ID, s.ID).
		Count(&count)
	return count > 0
}

func (l *Library) playlistSongs(p Playlist) []Song {
	songs := []Song{}
	l.db.Model(&p).Association("Songs").Find(&songs)
	return songs
}
