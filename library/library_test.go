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
	"testing"

	"mypod/config"
	"mypod/lib/itunes"
)

func testLibrary(t *testing.T) *Library {
	cfg, err := config.TestConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg.Library.CoverArt = false
	l := NewLibrary(cfg)
	if err := l.Open(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(l.Close)
	return l
}

type fakeCatalog struct {
	results map[string][]itunes.Result
	errs    map[string]error
}

func (f *fakeCatalog) Search(term string) ([]itunes.Result, error) {
	if err, ok := f.errs[term]; ok {
		return nil, err
	}
	return f.results[term], nil
}

func useCatalog(l *Library, f *fakeCatalog, terms ...string) {
	l.catalog = f
	l.config.Library.SearchTerms = terms
}

func testResult() itunes.Result {
	return itunes.Result{
		WrapperType:      "track",
		ArtistID:         7,
		ArtistName:       "Test Artist",
		Country:          "USA",
		CollectionID:     42,
		CollectionName:   "Test Album",
		PrimaryGenreName: "Rock",
		ReleaseDate:      "2020-03-06T08:00:00Z",
		TrackCount:       10,
		TrackID:          100,
		TrackName:        "Test Song",
		TrackTimeMillis:  200000,
		PreviewURL:       "https://example.com/preview.m4a",
	}
}
