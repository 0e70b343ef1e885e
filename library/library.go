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

// Package library is the music catalog core: artists, albums and songs
// ingested from the iTunes search API with stable external identities, and
// user playlists over the ingested songs. All reads and writes go through a
// Library which owns the database handle.
package library

import (
	"errors"

	"mypod/config"
	"mypod/lib/client"
	"mypod/lib/itunes"

	"gorm.io/gorm"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrProtectedPlaylist    = errors.New("playlist is protected")
	ErrInvalidName          = errors.New("invalid name")
	ErrNotFound             = errors.New("not found")
)

// catalog is the external source of raw song records.
type catalog interface {
	Search(term string) ([]itunes.Result, error)
}

type Library struct {
	config  *config.Config
	db      *gorm.DB
	catalog catalog
	client  *client.Client
}

func NewLibrary(config *config.Config) *Library {
	return &Library{
		config:  config,
		catalog: itunes.NewITunes(config),
		client:  client.NewClient(&config.Client),
	}
}

func (l *Library) Open() (err error) {
	err = l.openDB()
	if err == nil {
		err = l.createSystemPlaylists()
	}
	return
}

func (l *Library) Close() {
	l.closeDB()
}
