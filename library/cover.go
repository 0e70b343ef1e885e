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
	"mypod/lib/log"
)

// coverArt fetches album artwork. Covers are best effort; any failure means
// no cover, never a sync failure.
func (l *Library) coverArt(url string) []byte {
	if !l.config.Library.CoverArt || url == "" {
		return nil
	}
	_, body, err := l.client.Get(url)
	if err != nil {
		log.Printf("cover %s: %s\n", url, err)
		return nil
	}
	return body
}
