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
	"mypod/lib/str"
	"mypod/library"

	"github.com/spf13/cobra"
)

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "manage playlists",
}

var playlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "list playlists and their songs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(l *library.Library) error {
			for _, p := range l.Playlists() {
				fmt.Printf("[%d] %s (%d songs)\n", p.ID, p.Name, len(p.Songs))
				for _, s := range p.Songs {
					fmt.Printf("    %s\n", s.Title)
				}
			}
			return nil
		})
	},
}

var playlistCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "create a new playlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(l *library.Library) error {
			p, err := l.CreatePlaylist(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("[%d] %s\n", p.ID, p.Name)
			return nil
		})
	},
}

var playlistRenameCmd = &cobra.Command{
	Use:   "rename [id] [name]",
	Short: "rename a playlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(l *library.Library) error {
			p, err := l.LookupPlaylist(uint(str.Atoi(args[0])))
			if err != nil {
				return err
			}
			return l.RenamePlaylist(&p, args[1])
		})
	},
}

var playlistDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "delete a playlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(l *library.Library) error {
			p, err := l.LookupPlaylist(uint(str.Atoi(args[0])))
			if err != nil {
				return err
			}
			return l.DeletePlaylist(&p)
		})
	},
}

var playlistAddCmd = &cobra.Command{
	Use:   "add [id] [song-id]",
	Short: "add a song to a playlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(l *library.Library) error {
			p, err := l.LookupPlaylist(uint(str.Atoi(args[0])))
			if err != nil {
				return err
			}
			s, err := l.LookupSong(str.Atol(args[1]))
			if err != nil {
				return err
			}
			return l.AddSong(&p, s)
		})
	},
}

var playlistRemoveCmd = &cobra.Command{
	Use:   "remove [id] [song-id]",
	Short: "remove a song from a playlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(l *library.Library) error {
			p, err := l.LookupPlaylist(uint(str.Atoi(args[0])))
			if err != nil {
				return err
			}
			s, err := l.LookupSong(str.Atol(args[1]))
			if err != nil {
				return err
			}
			return l.RemoveSong(&p, s)
		})
	},
}

func withLibrary(f func(l *library.Library) error) error {
	cfg := getConfig()
	l := library.NewLibrary(cfg)
	err := l.Open()
	log.CheckError(err)
	defer l.Close()
	return f(l)
}

func init() {
	playlistCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	playlistCmd.AddCommand(playlistListCmd, playlistCreateCmd, playlistRenameCmd,
		playlistDeleteCmd, playlistAddCmd, playlistRemoveCmd)
	rootCmd.AddCommand(playlistCmd)
}
