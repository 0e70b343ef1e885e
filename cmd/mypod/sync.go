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
	"mypod/lib/log"
	"mypod/lib/str"
	"mypod/library"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "populate the catalog from the iTunes search API",
	Long: `Runs once against an empty catalog: for each configured search term the
matching songs with their albums and artists are saved. An already populated
catalog is left as is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sync()
	},
}

var syncTerms string
var syncNoCovers bool

func sync() error {
	cfg := getConfig()
	if syncTerms != "" {
		cfg.Library.SearchTerms = str.Split(syncTerms)
	}
	if syncNoCovers {
		cfg.Library.CoverArt = false
	}

	l := library.NewLibrary(cfg)
	err := l.Open()
	log.CheckError(err)
	defer l.Close()
	return l.Sync()
}

func init() {
	syncCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	syncCmd.Flags().StringVarP(&syncTerms, "terms", "t", "", "comma separated search terms instead of Library.SearchTerms")
	syncCmd.Flags().BoolVarP(&syncNoCovers, "no-covers", "n", false, "skip cover artwork download")
	rootCmd.AddCommand(syncCmd)
}
