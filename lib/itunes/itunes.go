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

package itunes

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"mypod/config"
	"mypod/lib/client"
)

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

type ITunes struct {
	config *config.Config
	client *client.Client
}

func NewITunes(config *config.Config) *ITunes {
	return &ITunes{
		config: config,
		client: client.NewClient(&config.Client),
	}
}

type searchResult struct {
	ResultCount int      `json:"resultCount"`
	Results     []Result `json:"results"`
}

// Result is a single record from the iTunes search API. A song record carries
// the artist, the collection (album) and the track in one flat object.
type Result struct {
	WrapperType      string `json:"wrapperType"`
	ArtistID         int64  `json:"artistId"`
	ArtistName       string `json:"artistName"`
	Country          string `json:"country"`
	CollectionID     int64  `json:"collectionId"`
	CollectionName   string `json:"collectionName"`
	PrimaryGenreName string `json:"primaryGenreName"`
	ReleaseDate      string `json:"releaseDate"`
	TrackCount       int    `json:"trackCount"`
	ArtworkURL       string `json:"artworkUrl100"`
	TrackID          int64  `json:"trackId"`
	TrackName        string `json:"trackName"`
	TrackTimeMillis  int64  `json:"trackTimeMillis"`
	PreviewURL       string `json:"previewUrl"`
}

// ReleaseYear is the collection release year, zero when the date is absent
// or malformed.
func (r Result) ReleaseYear() int {
	t, err := time.Parse(time.RFC3339, r.ReleaseDate)
	if err != nil {
		return 0
	}
	return t.Year()
}

// Search returns the song records matching term, in delivery order. Records
// other than songs (collections, artists) are dropped.
func (i *ITunes) Search(term string) ([]Result, error) {
	u := fmt.Sprintf("%s?term=%s&media=music&entity=%s&limit=%d",
		i.config.ITunes.URL,
		url.QueryEscape(term),
		i.config.ITunes.Entity,
		i.config.ITunes.Limit)

	var result searchResult
	err := i.client.GetJson(u, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	var songs []Result
	for _, r := range result.Results {
		if r.WrapperType == "track" || r.WrapperType == "song" {
			songs = append(songs, r)
		}
	}
	return songs, nil
}
