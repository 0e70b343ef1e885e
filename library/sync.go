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

	"mypod/lib/itunes"
	"mypod/lib/log"
)

// Sync populates an empty catalog from the configured search terms, in
// order. A catalog with any songs is considered populated and sync is a
// no-op; existence checks make a retried run after a partial failure resume
// at the first unsaved record. A failing term does not stop the remaining
// terms; the first failure is returned once all terms were attempted.
func (l *Library) Sync() error {
	if l.songCount() > 0 {
		log.Printf("sync: catalog already populated\n")
		return nil
	}
	var firstErr error
	for _, term := range l.config.Library.SearchTerms {
		err := l.SyncTerm(term)
		if err != nil {
			log.Printf("sync: %s\n", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// SyncTerm ingests the records for a single search term in delivery order.
// The first record failure aborts the term; records already saved stay
// saved.
func (l *Library) SyncTerm(term string) error {
	results, err := l.catalog.Search(term)
	if err != nil {
		return fmt.Errorf("term %q: %w", term, err)
	}
	for _, r := range results {
		err = l.reconcile(r)
		if err != nil {
			return fmt.Errorf("term %q: %w", term, err)
		}
	}
	return nil
}

// reconcile saves the artist, album and song of one record, in that order,
// skipping anything already known by external id. Album derivation needs the
// resolved artist and song derivation the resolved album, so a failure stops
// the record before any child could reference an unsaved parent.
func (l *Library) reconcile(r itunes.Result) error {
	artist, err := artistFromResult(r)
	if err != nil {
		return err
	}
	if !l.artistExists(artist.ArtistID) {
		log.Printf("sync: artist %s\n", artist.Name)
		err = l.createArtist(&artist)
		if err != nil {
			return err
		}
	}

	album, err := albumFromResult(r, artist)
	if err != nil {
		return err
	}
	if !l.albumExists(album.AlbumID) {
		album.Cover = l.coverArt(r.ArtworkURL)
		log.Printf("sync: album %s / %s\n", artist.Name, album.Name)
		err = l.createAlbum(&album)
		if err != nil {
			return err
		}
	}

	song, err := songFromResult(r, album)
	if err != nil {
		return err
	}
	if !l.songExists(song.SongID) {
		err = l.createSong(&song)
		if err != nil {
			return err
		}
	}
	return nil
}
