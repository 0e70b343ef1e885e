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

package main

import (
	"fmt"

	"mypod/lib/log"
	"mypod/library"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "catalog stats",
	Long:  `Row counts for artists, albums, songs and playlists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stats()
	},
}

func stats() error {
	cfg := getConfig()
	l := library.NewLibrary(cfg)
	err := l.Open()
	log.CheckError(err)
	defer l.Close()

	fmt.Printf("%-10s %d\n", "artists", l.ArtistCount())
	fmt.Printf("%-10s %d\n", "albums", l.AlbumCount())
	fmt.Printf("%-10s %d\n", "songs", l.SongCount())
	fmt.Printf("%-10s %d\n", "playlists", len(l.Playlists()))
	return nil
}

func init() {
	statsCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(statsCmd)
}
